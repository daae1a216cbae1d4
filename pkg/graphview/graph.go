// Package graphview turns a symmetric adjacency matrix into an undirected,
// weighted node/edge graph and lays it out for drawing.
package graphview

import (
	"errors"
	"math"
	"sort"

	"github.com/dd0wney/discourse-networks/pkg/networks"
)

// ErrLabelCount is returned when labels do not match the matrix size.
var ErrLabelCount = errors.New("label count does not match matrix size")

// Node is one actor. ID equals the matrix index.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label,omitempty"`
}

// Edge is an undirected weighted edge with From > To.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph is an undirected weighted graph built from an adjacency matrix.
type Graph struct {
	nodes     []Node
	edges     []Edge
	adjacency map[int]map[int]float64
}

// FromMatrix adds one node per matrix index and one edge for every unordered
// pair whose lower-triangle entry is non-zero, weighted by that entry.
// labels may be nil; otherwise it must have one label per index.
func FromMatrix(m *networks.Matrix, labels []string) (*Graph, error) {
	if m == nil {
		return nil, networks.ErrNilInput
	}
	n := m.Len()
	if labels != nil && len(labels) != n {
		return nil, ErrLabelCount
	}

	g := &Graph{
		nodes:     make([]Node, n),
		adjacency: make(map[int]map[int]float64, n),
	}
	for i := 0; i < n; i++ {
		g.nodes[i] = Node{ID: i}
		if labels != nil {
			g.nodes[i].Label = labels[i]
		}
		g.adjacency[i] = make(map[int]float64)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			w := m.At(i, j)
			if math.Abs(w) > 0 {
				g.edges = append(g.edges, Edge{From: i, To: j, Weight: w})
				g.adjacency[i][j] = w
				g.adjacency[j][i] = w
			}
		}
	}

	return g, nil
}

// Nodes returns all nodes in id order.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Edges returns all edges ordered by (From, To).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the ids adjacent to id in ascending order.
func (g *Graph) Neighbors(id int) []int {
	neighbors := make([]int, 0, len(g.adjacency[id]))
	for other := range g.adjacency[id] {
		neighbors = append(neighbors, other)
	}
	sort.Ints(neighbors)
	return neighbors
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) int {
	return len(g.adjacency[id])
}

// Weight returns the weight of edge (a, b) and whether it exists.
func (g *Graph) Weight(a, b int) (float64, bool) {
	w, ok := g.adjacency[a][b]
	return w, ok
}
