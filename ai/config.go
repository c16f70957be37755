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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// PipelineHost is the base URL for the span extraction service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	PipelineHost string

	// SummarizerHost is the base URL for the summarization service API.
	SummarizerHost string

	// PipelineModel is the model identifier used for noun-phrase and entity extraction.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	PipelineModel string

	// SummarizerModel is the model identifier used for paper summaries.
	SummarizerModel string

	// APIToken is sent as the bearer token. Local servers accept any value.
	APIToken string

	// SummaryMinWords and SummaryMaxWords bound generated summaries.
	// Defaults: 30 and 130
	SummaryMinWords int
	SummaryMaxWords int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithPipelineHost sets the span extraction service host URL.
func WithPipelineHost(host string) ConfigOption {
	return func(c *Config) {
		c.PipelineHost = host
	}
}

// WithSummarizerHost sets the summarization service host URL.
func WithSummarizerHost(host string) ConfigOption {
	return func(c *Config) {
		c.SummarizerHost = host
	}
}

// WithHost sets both pipeline and summarizer hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.PipelineHost = host
		c.SummarizerHost = host
	}
}

// WithPipelineModel sets the span extraction model identifier.
func WithPipelineModel(model string) ConfigOption {
	return func(c *Config) {
		c.PipelineModel = model
	}
}

// WithSummarizerModel sets the summarization model identifier.
func WithSummarizerModel(model string) ConfigOption {
	return func(c *Config) {
		c.SummarizerModel = model
	}
}

// WithAPIToken sets the API token.
func WithAPIToken(token string) ConfigOption {
	return func(c *Config) {
		c.APIToken = token
	}
}

// WithSummaryLength sets the word bounds for generated summaries.
func WithSummaryLength(minWords, maxWords int) ConfigOption {
	return func(c *Config) {
		c.SummaryMinWords = minWords
		c.SummaryMaxWords = maxWords
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		PipelineHost:    defaultHost,
		SummarizerHost:  defaultHost,
		PipelineModel:   "qwen2.5:3b",
		SummarizerModel: "qwen2.5:3b",
		APIToken:        "none",
		SummaryMinWords: 30,
		SummaryMaxWords: 130,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithPipelineModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	c.PipelineHost = normalizeHost(c.PipelineHost)
	c.SummarizerHost = normalizeHost(c.SummarizerHost)
	if c.APIToken == "" {
		c.APIToken = "none"
	}
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.PipelineHost == "" {
		return errors.New("ai config: PipelineHost is required")
	}
	if c.SummarizerHost == "" {
		return errors.New("ai config: SummarizerHost is required")
	}
	if c.PipelineModel == "" {
		return errors.New("ai config: PipelineModel is required")
	}
	if c.SummarizerModel == "" {
		return errors.New("ai config: SummarizerModel is required")
	}
	if c.SummaryMinWords < 1 {
		return errors.New("ai config: SummaryMinWords must be at least 1")
	}
	if c.SummaryMaxWords < c.SummaryMinWords {
		return errors.New("ai config: SummaryMaxWords must not be less than SummaryMinWords")
	}
	return nil
}
