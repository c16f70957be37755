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


package core

import (
	"encoding/binary"
	"slices"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Vocabulary is an ordered, immutable list of lowercase phrases that
// extraction is allowed to report.
type Vocabulary struct {
	entries []string
	index   map[string]struct{}
}

// NewVocabulary validates entries and builds a Vocabulary preserving their order.
func NewVocabulary(entries ...string) (Vocabulary, error) {
	if err := ValidateVocabularyEntries(entries); err != nil {
		return Vocabulary{}, err
	}
	index := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		index[e] = struct{}{}
	}
	return Vocabulary{
		entries: slices.Clone(entries),
		index:   index,
	}, nil
}

// MustVocabulary is like NewVocabulary but panics on invalid entries.
// Intended for package-level fixtures.
func MustVocabulary(entries ...string) Vocabulary {
	v, err := NewVocabulary(entries...)
	if err != nil {
		panic(err)
	}
	return v
}

// Entries returns a copy of the vocabulary in declaration order.
func (v Vocabulary) Entries() []string {
	return slices.Clone(v.entries)
}

// Len returns the number of entries.
func (v Vocabulary) Len() int {
	return len(v.entries)
}

// Contains reports whether phrase is a vocabulary entry.
func (v Vocabulary) Contains(phrase string) bool {
	_, ok := v.index[phrase]
	return ok
}

// Document is a unit of text read from disk.
type Document struct {
	Path    string
	Content string
	ModTime time.Time
}

// InterestSet is a deduplicated set of vocabulary entries found in text.
type InterestSet map[string]struct{}

// NewInterestSet creates a set holding the given interests.
func NewInterestSet(interests ...string) InterestSet {
	s := make(InterestSet, len(interests))
	for _, i := range interests {
		s[i] = struct{}{}
	}
	return s
}

// Add inserts an interest.
func (s InterestSet) Add(interest string) {
	s[interest] = struct{}{}
}

// Has reports whether interest is in the set.
func (s InterestSet) Has(interest string) bool {
	_, ok := s[interest]
	return ok
}

// Len returns the number of interests.
func (s InterestSet) Len() int {
	return len(s)
}

// Union adds every interest of other to s.
func (s InterestSet) Union(other InterestSet) {
	for i := range other {
		s[i] = struct{}{}
	}
}

// Sorted returns the interests in lexicographic order.
func (s InterestSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Pair is an unordered pair of distinct interests stored with A < B.
type Pair struct {
	A string
	B string
}

// NewPair returns the canonical pair for x and y regardless of argument order.
func NewPair(x, y string) (Pair, error) {
	if x == "" || y == "" || x == y {
		return Pair{}, ErrInvalidPair
	}
	if y < x {
		x, y = y, x
	}
	return Pair{A: x, B: y}, nil
}

// CooccurrenceTable counts how many documents contain each pair of interests.
// Counts only ever grow.
type CooccurrenceTable struct {
	counts map[Pair]int
}

// NewCooccurrenceTable creates an empty table.
func NewCooccurrenceTable() *CooccurrenceTable {
	return &CooccurrenceTable{counts: make(map[Pair]int)}
}

// Increment adds one to the count of p.
func (t *CooccurrenceTable) Increment(p Pair) {
	t.counts[p]++
}

// Count returns the count for the pair formed by x and y in either order.
func (t *CooccurrenceTable) Count(x, y string) int {
	p, err := NewPair(x, y)
	if err != nil {
		return 0
	}
	return t.counts[p]
}

// Len returns the number of distinct pairs.
func (t *CooccurrenceTable) Len() int {
	return len(t.counts)
}

// Pairs returns every pair in sorted order.
func (t *CooccurrenceTable) Pairs() []Pair {
	out := make([]Pair, 0, len(t.counts))
	for p := range t.counts {
		out = append(out, p)
	}
	slices.SortFunc(out, ComparePairs)
	return out
}

// Snapshot returns a copy of the underlying counts.
func (t *CooccurrenceTable) Snapshot() map[Pair]int {
	out := make(map[Pair]int, len(t.counts))
	for p, c := range t.counts {
		out[p] = c
	}
	return out
}

// ComparePairs orders pairs by A then B.
func ComparePairs(x, y Pair) int {
	if x.A != y.A {
		if x.A < y.A {
			return -1
		}
		return 1
	}
	if x.B < y.B {
		return -1
	}
	if x.B > y.B {
		return 1
	}
	return 0
}

// TopicRecord marks that a file modified on Date mentioned Topic.
type TopicRecord struct {
	Date  time.Time // midnight, local time
	Topic string
}

// Repository is a GitHub search hit for an interest.
type Repository struct {
	Interest    string
	Name        string
	HTMLURL     string
	Description string
	Language    string
	LastPushed  string
}

// Paper is an arXiv search hit for an interest.
type Paper struct {
	Interest  string
	Title     string
	Published string
	Summary   string
	PDFURL    string
}
