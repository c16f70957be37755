package analysis

import (
	"testing"

	"github.com/poiesic/topicscout/core"
	"github.com/stretchr/testify/assert"
)

func TestAccumulator_TwoFiles(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(core.NewInterestSet("llm", "gpt"))
	acc.Add(core.NewInterestSet("gpt", "pytorch"))

	assert.Equal(t, map[core.Pair]int{
		{A: "gpt", B: "llm"}:     1,
		{A: "gpt", B: "pytorch"}: 1,
	}, acc.Table().Snapshot())
	assert.Equal(t, []string{"gpt", "llm", "pytorch"}, acc.Nodes())
	assert.Equal(t, 2, acc.Documents())
}

func TestAccumulator_PairsPerDocument(t *testing.T) {
	tests := []struct {
		name      string
		interests []string
		want      map[core.Pair]int
	}{
		{name: "no interests", interests: nil, want: map[core.Pair]int{}},
		{name: "one interest", interests: []string{"bert"}, want: map[core.Pair]int{}},
		{
			name:      "three interests",
			interests: []string{"c", "a", "b"},
			want: map[core.Pair]int{
				{A: "a", B: "b"}: 1,
				{A: "a", B: "c"}: 1,
				{A: "b", B: "c"}: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccumulator()
			acc.Add(core.NewInterestSet(tt.interests...))
			assert.Equal(t, tt.want, acc.Table().Snapshot())
			assert.Len(t, acc.Nodes(), len(tt.interests))
		})
	}
}

func TestAccumulator_Symmetric(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(core.NewInterestSet("transformer", "attention"))
	acc.Add(core.NewInterestSet("attention", "transformer", "bert"))

	assert.Equal(t, 2, acc.Table().Count("transformer", "attention"))
	assert.Equal(t, 2, acc.Table().Count("attention", "transformer"))
	for _, p := range acc.Table().Pairs() {
		assert.Less(t, p.A, p.B)
	}
}

func TestAccumulator_Graph(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(core.NewInterestSet("gpt", "llm"))
	acc.Add(core.NewInterestSet("gpt", "llm", "bert"))
	acc.Add(core.NewInterestSet("rnn"))

	g := acc.Graph()
	assert.Equal(t, []string{"bert", "gpt", "llm", "rnn"}, g.Nodes)
	assert.Equal(t, []Edge{
		{Pair: core.Pair{A: "bert", B: "gpt"}, Weight: 1},
		{Pair: core.Pair{A: "bert", B: "llm"}, Weight: 1},
		{Pair: core.Pair{A: "gpt", B: "llm"}, Weight: 2},
	}, g.Edges)
}
