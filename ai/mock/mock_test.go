package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/topicscout/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockPipeline_Default(t *testing.T) {
	p := NewMockPipeline()

	got, err := p.Analyze(context.Background(), "We use BERT. It works")
	require.NoError(t, err)
	assert.Equal(t, []string{"We use BERT", "It works"}, got.NounPhrases)
	assert.Equal(t, []string{"We", "BERT", "It"}, got.Entities)
	assert.Equal(t, 1, p.CallCount())
}

func TestMockPipeline_Override(t *testing.T) {
	p := NewMockPipeline()
	boom := errors.New("boom")
	p.AnalyzeFunc = func(ctx context.Context, text string) (*ai.Analysis, error) {
		return nil, boom
	}

	_, err := p.Analyze(context.Background(), "text")
	assert.ErrorIs(t, err, boom)

	p.Reset()
	assert.Equal(t, 0, p.CallCount())
	_, err = p.Analyze(context.Background(), "text")
	assert.NoError(t, err)
}

func TestMockSummarizer(t *testing.T) {
	s := NewMockSummarizer()
	s.MaxWords = 3

	got, err := s.Summarize(context.Background(), "one two three four five")
	require.NoError(t, err)
	assert.Equal(t, "one two three", got)
	assert.Equal(t, 1, s.CallCount())
}

func TestMockProvider(t *testing.T) {
	provider := NewMockProvider()
	mp := provider.(*MockProvider)

	assert.Same(t, mp.GetMockPipeline(), provider.Pipeline())
	assert.Same(t, mp.GetMockSummarizer(), provider.Summarizer())

	require.NoError(t, provider.Close())
	assert.True(t, mp.Closed())
}
