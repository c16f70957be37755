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


package export

import (
	"fmt"
	"slices"
	"time"

	"github.com/poiesic/topicscout/analysis"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderTimeline draws a stacked bar chart with one bar per date and one
// colored segment per topic, sized by the number of files.
func RenderTimeline(path string, counts []analysis.TopicCount) error {
	if len(counts) == 0 {
		return ErrNoData
	}

	var dates []time.Time
	var topics []string
	cells := make(map[time.Time]map[string]int)
	for _, c := range counts {
		if _, ok := cells[c.Date]; !ok {
			cells[c.Date] = make(map[string]int)
			dates = append(dates, c.Date)
		}
		cells[c.Date][c.Topic] += c.Files
		if !slices.Contains(topics, c.Topic) {
			topics = append(topics, c.Topic)
		}
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	slices.Sort(topics)

	p := plot.New()
	p.Title.Text = "Files by Topic and Date"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Number of Files"
	p.Legend.Top = true

	width := vg.Points(min(24, 600/float64(len(dates))))
	var below *plotter.BarChart
	for i, topic := range topics {
		values := make(plotter.Values, len(dates))
		for j, d := range dates {
			values[j] = float64(cells[d][topic])
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("bars for %s: %w", topic, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(topic, bars)
		below = bars
	}

	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = d.Format(DateLayout)
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = draw.XRight

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
