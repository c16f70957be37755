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


package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/topicscout/ai"
	"github.com/poiesic/topicscout/core"
)

// AdvancedMatcher matches vocabulary entries against linguistic spans.
type AdvancedMatcher struct {
	entries  []string
	pipeline ai.LinguisticPipeline
}

// NewAdvancedMatcher creates a matcher backed by pipeline.
func NewAdvancedMatcher(vocab core.Vocabulary, pipeline ai.LinguisticPipeline) *AdvancedMatcher {
	return &AdvancedMatcher{
		entries:  vocab.Entries(),
		pipeline: pipeline,
	}
}

// Match reports every entry contained in a noun-phrase or entity span.
// Containment is a plain substring test on the lowercased, trimmed span.
// A pipeline error yields no interests and wraps ErrPipelineFailed.
func (m *AdvancedMatcher) Match(ctx context.Context, text string) (core.InterestSet, error) {
	found := core.NewInterestSet()
	if strings.TrimSpace(text) == "" {
		return found, nil
	}

	analysis, err := m.pipeline.Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPipelineFailed, err)
	}
	if analysis == nil {
		return found, nil
	}

	m.matchSpans(analysis.NounPhrases, found)
	m.matchSpans(analysis.Entities, found)
	return found, nil
}

func (m *AdvancedMatcher) matchSpans(spans []string, found core.InterestSet) {
	for _, span := range spans {
		span = strings.TrimSpace(strings.ToLower(span))
		if span == "" {
			continue
		}
		for _, e := range m.entries {
			if strings.Contains(span, e) {
				found.Add(e)
			}
		}
	}
}
