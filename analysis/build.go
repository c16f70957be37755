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
	"context"
	"log/slog"

	"github.com/poiesic/topicscout/collect"
	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/extract"
)

// BuildCooccurrence matches every file beneath dirs on its own and
// accumulates the pairs found in each. A file the matcher fails on is
// logged and skipped.
func BuildCooccurrence(ctx context.Context, walker *collect.Walker, matcher extract.Matcher, dirs []string) (*Accumulator, *collect.Report, error) {
	logger := slog.Default().With("component", "analysis")
	acc := NewAccumulator()
	report, err := walker.Walk(ctx, dirs, func(doc core.Document) error {
		interests, err := matcher.Match(ctx, doc.Content)
		if err != nil {
			logger.Error("error processing file", "path", doc.Path, "err", err)
			return nil
		}
		acc.Add(interests)
		return nil
	})
	if err != nil {
		return nil, report, err
	}
	logger.Debug("built co-occurrence table",
		"documents", acc.Documents(),
		"nodes", len(acc.Nodes()),
		"pairs", acc.Table().Len())
	return acc, report, nil
}

// BuildTimeline matches every file beneath dirs and records one
// (date, topic) entry per interest found.
func BuildTimeline(ctx context.Context, walker *collect.Walker, matcher extract.Matcher, dirs []string) (*Timeline, *collect.Report, error) {
	logger := slog.Default().With("component", "analysis")
	timeline := NewTimeline()
	report, err := walker.Walk(ctx, dirs, func(doc core.Document) error {
		interests, err := matcher.Match(ctx, doc.Content)
		if err != nil {
			logger.Error("error processing file", "path", doc.Path, "err", err)
			return nil
		}
		timeline.Add(doc, interests)
		return nil
	})
	if err != nil {
		return nil, report, err
	}
	logger.Debug("built timeline", "records", timeline.Len())
	return timeline, report, nil
}
