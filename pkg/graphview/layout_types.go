package graphview

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       uint64  // Seed for initial positions; equal seeds give equal layouts
}

// Layout computes node positions for a graph
type Layout interface {
	ComputeLayout(g *Graph) (map[int]Position, error)
}
