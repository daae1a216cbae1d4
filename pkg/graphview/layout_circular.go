package graphview

import (
	"math"
)

// CircularLayout arranges nodes in a circle in id order
type CircularLayout struct {
	config LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config LayoutConfig) *CircularLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &CircularLayout{config: config}
}

// ComputeLayout arranges nodes in a circle
func (cl *CircularLayout) ComputeLayout(g *Graph) (map[int]Position, error) {
	positions := make(map[int]Position, len(g.nodes))
	if len(g.nodes) == 0 {
		return positions, nil
	}

	centerX := cl.config.Width / 2
	centerY := cl.config.Height / 2
	radius := math.Max(math.Min(centerX, centerY)-cl.config.Padding, 0)

	angleStep := 2 * math.Pi / float64(len(g.nodes))
	for i, node := range g.nodes {
		angle := float64(i) * angleStep
		positions[node.ID] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions, nil
}
