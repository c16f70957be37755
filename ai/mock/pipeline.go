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


package mock

import (
	"context"
	"strings"
	"unicode"

	"github.com/poiesic/topicscout/ai"
)

// MockPipeline is a test double for ai.LinguisticPipeline.
type MockPipeline struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, uses default deterministic behavior.
	AnalyzeFunc func(ctx context.Context, text string) (*ai.Analysis, error)

	callCount int
}

// NewMockPipeline creates a mock pipeline with default behavior.
// It returns the concrete type so tests can set AnalyzeFunc and read CallCount.
func NewMockPipeline() *MockPipeline {
	return &MockPipeline{}
}

// Analyze splits text into sentence-sized noun phrases and reports
// capitalized words as entities.
func (m *MockPipeline) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	m.callCount++

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, text)
	}

	result := &ai.Analysis{}
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		result.NounPhrases = append(result.NounPhrases, s)
		for _, w := range strings.Fields(s) {
			w = strings.Trim(w, ",;:\"'()[]{}")
			r := []rune(w)
			if len(r) > 0 && unicode.IsUpper(r[0]) {
				result.Entities = append(result.Entities, w)
			}
		}
	}
	return result, nil
}

// CallCount returns the number of times Analyze was called.
func (m *MockPipeline) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom behavior.
func (m *MockPipeline) Reset() {
	m.callCount = 0
	m.AnalyzeFunc = nil
}
