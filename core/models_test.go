package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "short content", content: "test content"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer piece of content that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)
			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent("content1") == IDFromContent("content2") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestNewVocabulary(t *testing.T) {
	v, err := NewVocabulary("transformer", "deep learning", "nlp")
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"transformer", "deep learning", "nlp"}, v.Entries())
	assert.True(t, v.Contains("deep learning"))
	assert.False(t, v.Contains("deep"))
}

func TestVocabulary_EntriesIsCopy(t *testing.T) {
	v := MustVocabulary("bert", "gpt")
	entries := v.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"bert", "gpt"}, v.Entries())
}

func TestMustVocabulary_Panics(t *testing.T) {
	assert.Panics(t, func() { MustVocabulary("bert", "bert") })
}

func TestInterestSet(t *testing.T) {
	s := NewInterestSet("llm", "gpt")
	s.Add("gpt")
	s.Add("bert")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("llm"))
	assert.False(t, s.Has("pytorch"))
	assert.Equal(t, []string{"bert", "gpt", "llm"}, s.Sorted())

	s.Union(NewInterestSet("pytorch", "llm"))
	assert.Equal(t, []string{"bert", "gpt", "llm", "pytorch"}, s.Sorted())
}

func TestNewPair(t *testing.T) {
	tests := []struct {
		name    string
		x, y    string
		want    Pair
		wantErr bool
	}{
		{name: "already ordered", x: "gpt", y: "llm", want: Pair{A: "gpt", B: "llm"}},
		{name: "reversed", x: "llm", y: "gpt", want: Pair{A: "gpt", B: "llm"}},
		{name: "multi word", x: "transfer learning", y: "bert", want: Pair{A: "bert", B: "transfer learning"}},
		{name: "same member", x: "gpt", y: "gpt", wantErr: true},
		{name: "empty member", x: "", y: "gpt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPair(tt.x, tt.y)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCooccurrenceTable(t *testing.T) {
	table := NewCooccurrenceTable()

	ab, err := NewPair("b", "a")
	require.NoError(t, err)
	table.Increment(ab)
	table.Increment(ab)

	cd, err := NewPair("c", "d")
	require.NoError(t, err)
	table.Increment(cd)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.Count("a", "b"))
	assert.Equal(t, 2, table.Count("b", "a"))
	assert.Equal(t, 1, table.Count("d", "c"))
	assert.Equal(t, 0, table.Count("a", "c"))
	assert.Equal(t, 0, table.Count("a", "a"))
	assert.Equal(t, []Pair{{A: "a", B: "b"}, {A: "c", B: "d"}}, table.Pairs())

	snap := table.Snapshot()
	snap[ab] = 100
	assert.Equal(t, 2, table.Count("a", "b"), "snapshot must not alias the table")
}
