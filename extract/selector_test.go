package extract

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/poiesic/topicscout/ai"
	"github.com/poiesic/topicscout/ai/mock"
	"github.com/poiesic/topicscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "basic", want: ModeBasic},
		{input: "", want: ModeBasic},
		{input: "Advanced", want: ModeAdvanced},
		{input: "spacy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestSelector_Plan(t *testing.T) {
	vocab := core.MustVocabulary("bert")
	basic := NewKeywordMatcher(vocab)
	advanced := NewAdvancedMatcher(vocab, mock.NewMockPipeline())

	strategies := func(stages []Stage) []Strategy {
		out := make([]Strategy, len(stages))
		for i, s := range stages {
			out[i] = s.Strategy
		}
		return out
	}

	t.Run("basic mode", func(t *testing.T) {
		s := NewSelector(basic, advanced, slog.Default())
		assert.Equal(t, []Strategy{StrategyBasic}, strategies(s.Plan(ModeBasic)))
	})

	t.Run("advanced mode with pipeline", func(t *testing.T) {
		s := NewSelector(basic, advanced, slog.Default())
		assert.Equal(t, []Strategy{StrategyAdvanced, StrategyBasic}, strategies(s.Plan(ModeAdvanced)))
	})

	t.Run("advanced mode without pipeline", func(t *testing.T) {
		s := NewSelector(basic, nil, nil)
		assert.Equal(t, []Strategy{StrategyBasic}, strategies(s.Plan(ModeAdvanced)))
	})
}

func TestSelector_Extract(t *testing.T) {
	vocab := core.MustVocabulary("gpt", "bert")
	text := "ChatGPT and BERT"

	t.Run("advanced success", func(t *testing.T) {
		pipeline := mock.NewMockPipeline()
		pipeline.AnalyzeFunc = spans(nil, []string{"ChatGPT", "BERT"})
		s := NewSelector(NewKeywordMatcher(vocab), NewAdvancedMatcher(vocab, pipeline), slog.Default())

		res := s.Extract(context.Background(), text, ModeAdvanced)
		assert.Equal(t, StrategyAdvanced, res.Strategy)
		assert.NoError(t, res.Fallback)
		assert.Equal(t, []string{"bert", "gpt"}, res.Interests.Sorted())
	})

	t.Run("advanced failure falls back without merging", func(t *testing.T) {
		boom := errors.New("model unavailable")
		pipeline := mock.NewMockPipeline()
		pipeline.AnalyzeFunc = func(context.Context, string) (*ai.Analysis, error) {
			return nil, boom
		}
		s := NewSelector(NewKeywordMatcher(vocab), NewAdvancedMatcher(vocab, pipeline), slog.Default())

		res := s.Extract(context.Background(), text, ModeAdvanced)
		assert.Equal(t, StrategyBasic, res.Strategy)
		assert.ErrorIs(t, res.Fallback, ErrPipelineFailed)
		assert.ErrorIs(t, res.Fallback, boom)
		// word-bounded keyword search does not see gpt inside chatgpt
		assert.Equal(t, []string{"bert"}, res.Interests.Sorted())
		assert.Equal(t, 1, pipeline.CallCount())
	})

	t.Run("basic mode never calls the pipeline", func(t *testing.T) {
		pipeline := mock.NewMockPipeline()
		s := NewSelector(NewKeywordMatcher(vocab), NewAdvancedMatcher(vocab, pipeline), slog.Default())

		res := s.Extract(context.Background(), text, ModeBasic)
		assert.Equal(t, StrategyBasic, res.Strategy)
		assert.NoError(t, res.Fallback)
		assert.Equal(t, 0, pipeline.CallCount())
	})

	t.Run("empty text", func(t *testing.T) {
		s := NewSelector(NewKeywordMatcher(vocab), nil, slog.Default())

		res := s.Extract(context.Background(), "", ModeAdvanced)
		assert.Equal(t, 0, res.Interests.Len())
	})
}
