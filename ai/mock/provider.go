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

import "github.com/poiesic/topicscout/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock pipeline and summarizer instances.
type MockProvider struct {
	pipeline   *MockPipeline
	summarizer *MockSummarizer
	closed     bool
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockPipeline()/GetMockSummarizer() to access concrete types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		pipeline:   NewMockPipeline(),
		summarizer: NewMockSummarizer(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
func NewMockProviderWithServices(pipeline *MockPipeline, summarizer *MockSummarizer) ai.AIProvider {
	return &MockProvider{
		pipeline:   pipeline,
		summarizer: summarizer,
	}
}

// Pipeline returns the mock pipeline.
func (p *MockProvider) Pipeline() ai.LinguisticPipeline {
	return p.pipeline
}

// Summarizer returns the mock summarizer.
func (p *MockProvider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockPipeline returns the underlying mock pipeline for test assertions.
func (p *MockProvider) GetMockPipeline() *MockPipeline {
	return p.pipeline
}

// GetMockSummarizer returns the underlying mock summarizer for test assertions.
func (p *MockProvider) GetMockSummarizer() *MockSummarizer {
	return p.summarizer
}
