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


package collect

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/extract"
)

// InterestsResult is the outcome of Aggregator.Interests.
type InterestsResult struct {
	Interests core.InterestSet
	Strategy  extract.Strategy
	// Fallback holds the advanced matcher's error when it failed.
	Fallback error
	Report   *Report
}

// Aggregator extracts the interests of a whole corpus at once.
type Aggregator struct {
	walker   *Walker
	selector *extract.Selector
	logger   *slog.Logger
}

// NewAggregator creates an aggregator.
func NewAggregator(walker *Walker, selector *extract.Selector) *Aggregator {
	return &Aggregator{
		walker:   walker,
		selector: selector,
		logger:   slog.Default().With("component", "collect-aggregator"),
	}
}

// Text reads every accepted file beneath dirs and concatenates their
// contents, each preceded by a newline.
func (a *Aggregator) Text(ctx context.Context, dirs []string) (string, *Report, error) {
	var sb strings.Builder
	report, err := a.walker.Walk(ctx, dirs, func(doc core.Document) error {
		sb.WriteByte('\n')
		sb.WriteString(doc.Content)
		return nil
	})
	return sb.String(), report, err
}

// Interests extracts the interests present in the concatenation of every
// accepted file beneath dirs. Empty or missing directories give an empty
// set and no error; the only error is a cancelled context.
func (a *Aggregator) Interests(ctx context.Context, dirs []string, mode extract.Mode) (*InterestsResult, error) {
	text, report, err := a.Text(ctx, dirs)
	if err != nil {
		return nil, err
	}

	a.logger.Info("aggregated documents",
		"files", report.Count(Read),
		"skipped", len(report.Failures())+report.Count(OutsideWindow),
		"bytes", len(text),
		"mode", mode)

	res := a.selector.Extract(ctx, text, mode)
	return &InterestsResult{
		Interests: res.Interests,
		Strategy:  res.Strategy,
		Fallback:  res.Fallback,
		Report:    report,
	}, nil
}
