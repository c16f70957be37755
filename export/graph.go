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


package export

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/poiesic/topicscout/analysis"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	nodeColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	edgeColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// topicNode is a graph node labelled with an interest.
type topicNode struct {
	id   int64
	name string
}

func (n topicNode) ID() int64     { return n.id }
func (n topicNode) DOTID() string { return n.name }

// cooccurrenceEdge joins two interests weighted by shared documents.
type cooccurrenceEdge struct {
	from, to topicNode
	weight   float64
}

func (e cooccurrenceEdge) From() graph.Node { return e.from }
func (e cooccurrenceEdge) To() graph.Node   { return e.to }
func (e cooccurrenceEdge) Weight() float64  { return e.weight }

func (e cooccurrenceEdge) ReversedEdge() graph.Edge {
	return cooccurrenceEdge{from: e.to, to: e.from, weight: e.weight}
}

func (e cooccurrenceEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "weight", Value: strconv.FormatFloat(e.weight, 'f', -1, 64)},
		{Key: "penwidth", Value: strconv.FormatFloat(e.weight*0.5, 'f', -1, 64)},
	}
}

// KnowledgeGraph is the co-occurrence graph of a corpus.
type KnowledgeGraph struct {
	g     *simple.WeightedUndirectedGraph
	nodes []topicNode
}

// NewKnowledgeGraph builds a weighted undirected graph with one node per
// interest and one edge per co-occurring pair.
func NewKnowledgeGraph(src analysis.Graph) *KnowledgeGraph {
	kg := &KnowledgeGraph{g: simple.NewWeightedUndirectedGraph(0, 0)}
	ids := make(map[string]topicNode, len(src.Nodes))
	for i, name := range src.Nodes {
		n := topicNode{id: int64(i), name: name}
		ids[name] = n
		kg.nodes = append(kg.nodes, n)
		kg.g.AddNode(n)
	}
	for _, e := range src.Edges {
		from, ok1 := ids[e.A]
		to, ok2 := ids[e.B]
		if !ok1 || !ok2 {
			continue
		}
		kg.g.SetWeightedEdge(cooccurrenceEdge{from: from, to: to, weight: float64(e.Weight)})
	}
	return kg
}

// Len returns the number of nodes.
func (kg *KnowledgeGraph) Len() int {
	return len(kg.nodes)
}

// Weight returns the weight of the edge between two interests, or zero.
func (kg *KnowledgeGraph) Weight(a, b string) float64 {
	var x, y graph.Node
	for _, n := range kg.nodes {
		switch n.name {
		case a:
			x = n
		case b:
			y = n
		}
	}
	if x == nil || y == nil {
		return 0
	}
	e := kg.g.WeightedEdge(x.ID(), y.ID())
	if e == nil {
		return 0
	}
	return e.Weight()
}

// MarshalDOT encodes the graph in Graphviz DOT format.
func (kg *KnowledgeGraph) MarshalDOT() ([]byte, error) {
	return dot.Marshal(kg.g, "knowledge_graph", "", "  ")
}

// WriteDOT writes the graph to path in DOT format.
func (kg *KnowledgeGraph) WriteDOT(path string) error {
	b, err := kg.MarshalDOT()
	if err != nil {
		return fmt.Errorf("encode dot: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// RenderPNG lays the graph out with a force-directed algorithm and draws
// it with edge widths proportional to weight.
func (kg *KnowledgeGraph) RenderPNG(path string) error {
	if len(kg.nodes) == 0 {
		return ErrNoData
	}

	eades := layout.EadesR2{Repulsion: 1, Rate: 0.05, Updates: 50, Theta: 0.2}
	optimizer := layout.NewOptimizerR2(kg.g, eades.Update)
	for optimizer.Update() {
	}

	p := plot.New()
	p.Title.Text = "Knowledge Graph of Topics"
	p.HideAxes()

	edges := kg.g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		u := optimizer.Coord2(e.From().ID())
		v := optimizer.Coord2(e.To().ID())
		line, err := plotter.NewLine(plotter.XYs{{X: u.X, Y: u.Y}, {X: v.X, Y: v.Y}})
		if err != nil {
			return err
		}
		line.LineStyle.Color = edgeColor
		line.LineStyle.Width = vg.Points(e.Weight() * 0.5)
		p.Add(line)
	}

	xys := make(plotter.XYs, len(kg.nodes))
	names := make([]string, len(kg.nodes))
	for i, n := range kg.nodes {
		c := optimizer.Coord2(n.id)
		xys[i] = plotter.XY{X: c.X, Y: c.Y}
		names[i] = n.name
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = nodeColor
	scatter.GlyphStyle.Radius = vg.Points(8)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return err
	}
	p.Add(labels)

	if err := p.Save(10*vg.Inch, 10*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
