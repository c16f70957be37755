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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/poiesic/topicscout/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxChunkBytes bounds the text sent in a single request. Longer inputs
// are analyzed piecewise and the spans concatenated.
const maxChunkBytes = 8000

// Pipeline implements ai.LinguisticPipeline using OpenAI-compatible chat APIs.
type Pipeline struct {
	client llms.Model
	logger *slog.Logger
}

// spans is the wrapper structure for the LLM's JSON response.
type spans struct {
	NounPhrases []string `json:"noun_phrases"`
	Entities    []string `json:"entities"`
}

// newPipeline is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newPipeline(config *ai.Config) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.PipelineHost),
		openai.WithToken(config.APIToken),
		openai.WithModel(config.PipelineModel),
	)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		client: client,
		logger: slog.Default().With("component", "openai-pipeline"),
	}, nil
}

// NewPipeline creates a new linguistic pipeline using the provided configuration.
//
// Returns ai.LinguisticPipeline interface to enforce abstraction.
func NewPipeline(config *ai.Config) (ai.LinguisticPipeline, error) {
	return newPipeline(config)
}

// Analyze returns the noun phrases and named entities the model finds in text.
// Whitespace-only text yields an empty analysis without contacting the model.
// A single failed or unparseable request fails the whole call.
func (p *Pipeline) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	result := &ai.Analysis{}
	chunks := chunkText(text, maxChunkBytes)
	for i, chunk := range chunks {
		s, err := p.analyzeChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		result.NounPhrases = append(result.NounPhrases, s.NounPhrases...)
		result.Entities = append(result.Entities, s.Entities...)
	}

	p.logger.Debug("analyzed text",
		"chunks", len(chunks),
		"noun_phrases", len(result.NounPhrases),
		"entities", len(result.Entities))
	return result, nil
}

func (p *Pipeline) analyzeChunk(ctx context.Context, text string) (*spans, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSpanPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		p.logger.Error("failed to generate content", "err", err)
		return nil, err
	}
	if len(response.Choices) < 1 {
		p.logger.Debug("no choices returned from model")
		return &spans{}, nil
	}

	s, err := parseSpans(response.Choices[0].Content)
	if err != nil {
		p.logger.Warn("error parsing pipeline response", "response", response.Choices[0].Content, "err", err)
		return nil, err
	}
	return s, nil
}

// parseSpans decodes a model response, tolerating code fences and the
// JSON slips repairJSON knows about.
func parseSpans(raw string) (*spans, error) {
	text := repairJSON(stripCodeFence(raw))
	if text == "" {
		return nil, ErrEmptyResponse
	}
	var s spans
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &s, nil
}
