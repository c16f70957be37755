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


package analysis

import (
	"github.com/poiesic/topicscout/core"
)

// Edge is a weighted co-occurrence between two interests.
type Edge struct {
	core.Pair
	Weight int
}

// Graph is a snapshot of an Accumulator with deterministic ordering.
type Graph struct {
	Nodes []string
	Edges []Edge
}

// Accumulator counts, for every pair of distinct interests, the number of
// documents in which both appear.
type Accumulator struct {
	table     *core.CooccurrenceTable
	nodes     core.InterestSet
	documents int
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		table: core.NewCooccurrenceTable(),
		nodes: core.NewInterestSet(),
	}
}

// Add records the interests of one document. Every unordered pair of
// distinct interests is incremented once; a document with fewer than two
// interests contributes nodes only.
func (a *Accumulator) Add(interests core.InterestSet) {
	a.documents++
	sorted := interests.Sorted()
	for i, x := range sorted {
		a.nodes.Add(x)
		for _, y := range sorted[i+1:] {
			p, err := core.NewPair(x, y)
			if err != nil {
				continue
			}
			a.table.Increment(p)
		}
	}
}

// Table returns the underlying co-occurrence table.
func (a *Accumulator) Table() *core.CooccurrenceTable {
	return a.table
}

// Nodes returns every interest seen, sorted.
func (a *Accumulator) Nodes() []string {
	return a.nodes.Sorted()
}

// Documents returns the number of documents added.
func (a *Accumulator) Documents() int {
	return a.documents
}

// Graph returns the nodes and weighted edges, both sorted.
func (a *Accumulator) Graph() Graph {
	pairs := a.table.Pairs()
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{Pair: p, Weight: a.table.Count(p.A, p.B)}
	}
	return Graph{Nodes: a.Nodes(), Edges: edges}
}
