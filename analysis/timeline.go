// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package analysis

import (
	"cmp"
	"slices"
	"time"

	"github.com/poiesic/topicscout/core"
)

// TopicCount is the number of files modified on Date that mention Topic.
type TopicCount struct {
	Date  time.Time
	Topic string
	Files int
}

// Timeline collects (date, topic) records.
type Timeline struct {
	records []core.TopicRecord
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add appends one record per interest, dated by the document's local
// modification day.
func (t *Timeline) Add(doc core.Document, interests core.InterestSet) {
	date := Day(doc.ModTime)
	for _, topic := range interests.Sorted() {
		t.records = append(t.records, core.TopicRecord{Date: date, Topic: topic})
	}
}

// Records returns the records in insertion order.
func (t *Timeline) Records() []core.TopicRecord {
	return slices.Clone(t.records)
}

// Len returns the number of records.
func (t *Timeline) Len() int {
	return len(t.records)
}

// Counts groups records by date and topic, ordered by date then topic.
func (t *Timeline) Counts() []TopicCount {
	type key struct {
		date  time.Time
		topic string
	}
	counts := make(map[key]int)
	for _, r := range t.records {
		counts[key{r.Date, r.Topic}]++
	}

	out := make([]TopicCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, TopicCount{Date: k.date, Topic: k.topic, Files: n})
	}
	slices.SortFunc(out, func(a, b TopicCount) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Topic, b.Topic)
	})
	return out
}

// Day truncates t to midnight in the local time zone.
func Day(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
