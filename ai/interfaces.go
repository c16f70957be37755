package ai

import "context"

// LinguisticPipeline extracts linguistically delimited spans from text.
// Implementations must be safe for concurrent use.
type LinguisticPipeline interface {
	// Analyze returns the noun-phrase and named-entity spans found in text.
	// Spans are returned as they appear; callers normalize case and whitespace.
	// Returns an error if the underlying service fails. No partial results are
	// returned alongside an error.
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// Analysis is the output of a LinguisticPipeline run.
type Analysis struct {
	// NounPhrases are base noun phrases, e.g. "a large language model".
	NounPhrases []string

	// Entities are named-entity mentions, e.g. "OpenAI GPT-4".
	Entities []string
}

// Summarizer condenses text.
// Implementations must be safe for concurrent use.
type Summarizer interface {
	// Summarize returns a short summary of text.
	Summarize(ctx context.Context, text string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
type AIProvider interface {
	// Pipeline returns the span extraction service.
	Pipeline() LinguisticPipeline

	// Summarizer returns the summarization service.
	Summarizer() Summarizer

	// Close releases resources held by the provider and its services.
	Close() error
}
