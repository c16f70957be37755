package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/topicscout/analysis"
	"github.com/poiesic/topicscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() analysis.Graph {
	acc := analysis.NewAccumulator()
	acc.Add(core.NewInterestSet("llm", "gpt"))
	acc.Add(core.NewInterestSet("gpt", "pytorch"))
	acc.Add(core.NewInterestSet("gpt", "llm"))
	acc.Add(core.NewInterestSet("rnn"))
	return acc.Graph()
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(b), 8)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(b[:8]))
}

func TestKnowledgeGraph(t *testing.T) {
	kg := NewKnowledgeGraph(sampleGraph())

	assert.Equal(t, 4, kg.Len())
	assert.Equal(t, 2.0, kg.Weight("gpt", "llm"))
	assert.Equal(t, 2.0, kg.Weight("llm", "gpt"))
	assert.Equal(t, 1.0, kg.Weight("gpt", "pytorch"))
	assert.Zero(t, kg.Weight("llm", "rnn"))
	assert.Zero(t, kg.Weight("llm", "unknown"))
}

func TestKnowledgeGraph_DOT(t *testing.T) {
	b, err := NewKnowledgeGraph(sampleGraph()).MarshalDOT()
	require.NoError(t, err)
	dot := string(b)

	assert.Contains(t, dot, "graph knowledge_graph {")
	assert.Contains(t, dot, "rnn")
	assert.Contains(t, dot, "gpt -- llm")
	assert.Contains(t, dot, "weight=2")
}

func TestKnowledgeGraph_Files(t *testing.T) {
	dir := t.TempDir()
	kg := NewKnowledgeGraph(sampleGraph())

	require.NoError(t, kg.WriteDOT(filepath.Join(dir, "knowledge_graph.dot")))
	require.NoError(t, kg.RenderPNG(filepath.Join(dir, "knowledge_graph.png")))
	assertPNG(t, filepath.Join(dir, "knowledge_graph.png"))
}

func TestKnowledgeGraph_Empty(t *testing.T) {
	kg := NewKnowledgeGraph(analysis.Graph{})
	err := kg.RenderPNG(filepath.Join(t.TempDir(), "g.png"))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRenderTimeline(t *testing.T) {
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.Local)
	counts := []analysis.TopicCount{
		{Date: day, Topic: "bert", Files: 2},
		{Date: day, Topic: "gpt", Files: 1},
		{Date: day.AddDate(0, 0, 2), Topic: "gpt", Files: 3},
	}
	path := filepath.Join(t.TempDir(), "time_analysis.png")

	require.NoError(t, RenderTimeline(path, counts))
	assertPNG(t, path)
}

func TestRenderTimeline_Empty(t *testing.T) {
	err := RenderTimeline(filepath.Join(t.TempDir(), "t.png"), nil)
	assert.ErrorIs(t, err, ErrNoData)
}
