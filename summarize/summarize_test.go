package summarize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/topicscout/ai/mock"
	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Run(t *testing.T) {
	dir := t.TempDir()
	metadata := filepath.Join(dir, "arxiv_papers.xlsx")
	output := filepath.Join(dir, "paper_summaries.md")
	require.NoError(t, export.WritePapers(metadata, []core.Paper{
		{Interest: "bert", Title: "Good Paper", Summary: "one two three four"},
		{Interest: "bert", Title: "Broken Paper", Summary: "fails"},
		{Interest: "bert", Title: "Empty Paper"},
	}))

	summarizer := mock.NewMockSummarizer()
	summarizer.SummarizeFunc = func(ctx context.Context, text string) (string, error) {
		if text == "fails" {
			return "", errors.New("model crashed")
		}
		return "short: " + text, nil
	}

	entries, err := NewReporter(summarizer).Run(context.Background(), metadata, output)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Error(t, entries[1].Err)
	assert.Equal(t, 2, summarizer.CallCount(), "empty abstracts are not summarized")

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "# Paper Summaries\n\n" +
		"## Good Paper\n\n**Original Summary:**\n\none two three four\n\n**Generated Summary:**\n\nshort: one two three four\n\n---\n\n" +
		"## Broken Paper\n\n**Original Summary:**\n\nfails\n\n**Generated Summary:**\n\nSummary not available\n\n---\n\n" +
		"## Empty Paper\n\n**Original Summary:**\n\n\n\n**Generated Summary:**\n\nNo summary provided.\n\n---\n\n"
	assert.Equal(t, want, string(b))
}

func TestReporter_MissingTitle(t *testing.T) {
	dir := t.TempDir()
	metadata := filepath.Join(dir, "papers.xlsx")
	require.NoError(t, export.WritePapers(metadata, []core.Paper{{Summary: "abstract"}}))

	entries, err := NewReporter(mock.NewMockSummarizer()).Run(context.Background(), metadata, filepath.Join(dir, "out.md"))
	require.NoError(t, err)
	assert.Equal(t, NoTitle, entries[0].Title)
	assert.Equal(t, "abstract", entries[0].Generated)
}

func TestReporter_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing metadata", func(t *testing.T) {
		_, err := NewReporter(mock.NewMockSummarizer()).Run(context.Background(),
			filepath.Join(dir, "nope.xlsx"), filepath.Join(dir, "out.md"))
		assert.ErrorIs(t, err, ErrMetadataNotFound)
	})

	t.Run("no papers", func(t *testing.T) {
		metadata := filepath.Join(dir, "empty.xlsx")
		require.NoError(t, export.WritePapers(metadata, nil))

		_, err := NewReporter(mock.NewMockSummarizer()).Run(context.Background(), metadata, filepath.Join(dir, "out.md"))
		assert.ErrorIs(t, err, ErrNoPapers)
		assert.NoFileExists(t, filepath.Join(dir, "out.md"))
	})
}
