package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/topicscout/ai"
	"github.com/poiesic/topicscout/ai/mock"
	"github.com/poiesic/topicscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spans(nouns, entities []string) func(context.Context, string) (*ai.Analysis, error) {
	return func(context.Context, string) (*ai.Analysis, error) {
		return &ai.Analysis{NounPhrases: nouns, Entities: entities}, nil
	}
}

func TestAdvancedMatcher_Match(t *testing.T) {
	vocab := core.MustVocabulary("gpt", "bert", "large language model", "nlp", "pytorch")

	tests := []struct {
		name     string
		nouns    []string
		entities []string
		want     []string
	}{
		{
			name:  "noun phrases",
			nouns: []string{"a Large Language Model", "the tokenizer"},
			want:  []string{"large language model"},
		},
		{
			name:     "entities",
			entities: []string{"  BERT ", "PyTorch"},
			want:     []string{"bert", "pytorch"},
		},
		{
			name:     "union of both passes",
			nouns:    []string{"our nlp stack"},
			entities: []string{"BERT"},
			want:     []string{"bert", "nlp"},
		},
		{
			name:     "substring inside a longer word",
			entities: []string{"ChatGPT"},
			want:     []string{"gpt"},
		},
		{
			name:  "abbreviation not spelled out",
			nouns: []string{"natural language processing"},
			want:  []string{},
		},
		{
			name: "no spans",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := mock.NewMockPipeline()
			pipeline.AnalyzeFunc = spans(tt.nouns, tt.entities)
			m := NewAdvancedMatcher(vocab, pipeline)

			got, err := m.Match(context.Background(), "some text")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestAdvancedMatcher_DefaultMock(t *testing.T) {
	m := NewAdvancedMatcher(DefaultVocabulary(), mock.NewMockPipeline())

	got, err := m.Match(context.Background(), "We use a Transformer with Attention and BERT for NLP tasks.")
	require.NoError(t, err)
	for _, want := range []string{"transformer", "attention", "bert", "nlp"} {
		assert.True(t, got.Has(want), "missing %q", want)
	}
}

func TestAdvancedMatcher_BlankTextSkipsPipeline(t *testing.T) {
	pipeline := mock.NewMockPipeline()
	m := NewAdvancedMatcher(DefaultVocabulary(), pipeline)

	got, err := m.Match(context.Background(), " \n\t")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, 0, pipeline.CallCount())
}

func TestAdvancedMatcher_PipelineError(t *testing.T) {
	boom := errors.New("model unavailable")
	pipeline := mock.NewMockPipeline()
	pipeline.AnalyzeFunc = func(context.Context, string) (*ai.Analysis, error) {
		return &ai.Analysis{Entities: []string{"BERT"}}, boom
	}
	m := NewAdvancedMatcher(DefaultVocabulary(), pipeline)

	got, err := m.Match(context.Background(), "BERT")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrPipelineFailed)
	assert.ErrorIs(t, err, boom)
}
