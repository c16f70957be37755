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


// Package mock provides test doubles for AI service interfaces.
//
// The mocks are deterministic and need no network access. Each exposes a
// function field that overrides the default behavior, plus call counting.
//
// # Usage
//
//	provider := mock.NewMockProvider()
//	pipeline := provider.(*mock.MockProvider).GetMockPipeline()
//	pipeline.AnalyzeFunc = func(ctx context.Context, text string) (*ai.Analysis, error) {
//	    return nil, errors.New("model unavailable")
//	}
//
//	// Check call counts
//	count := pipeline.CallCount()
//
// # Default Behavior
//
//   - MockPipeline: sentences become noun phrases, capitalized words become entities
//   - MockSummarizer: returns the first words of the input
//   - MockProvider: aggregates a mock pipeline and summarizer
package mock
