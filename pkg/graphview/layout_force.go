package graphview

import (
	"math"
	"math/rand/v2"
)

// ForceDirectedLayout implements Fruchterman-Reingold style layout. Edge
// attraction scales with |weight| relative to the heaviest edge.
type ForceDirectedLayout struct {
	config LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config LayoutConfig) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using a force-directed algorithm
func (fdl *ForceDirectedLayout) ComputeLayout(g *Graph) (map[int]Position, error) {
	cfg := fdl.config
	n := len(g.nodes)

	if n == 0 {
		return make(map[int]Position), nil
	}
	if n == 1 {
		return map[int]Position{
			g.nodes[0].ID: {X: cfg.Width / 2, Y: cfg.Height / 2},
		}, nil
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	positions := make([]Position, n)
	for i := range positions {
		positions[i] = Position{
			X: rng.Float64()*(cfg.Width-2*cfg.Padding) + cfg.Padding,
			Y: rng.Float64()*(cfg.Height-2*cfg.Padding) + cfg.Padding,
		}
	}

	maxWeight := 0.0
	for _, e := range g.edges {
		maxWeight = math.Max(maxWeight, math.Abs(e.Weight))
	}

	k := math.Sqrt((cfg.Width * cfg.Height) / float64(n)) // Optimal distance
	temperature := cfg.Width / 10.0

	for iter := 0; iter < cfg.Iterations; iter++ {
		forces := make([]Position, n)

		// Repulsion between all pairs
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := positions[i].X - positions[j].X
				dy := positions[i].Y - positions[j].Y
				dist := math.Max(math.Sqrt(dx*dx+dy*dy), 0.01)

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[i].X += fx
				forces[i].Y += fy
				forces[j].X -= fx
				forces[j].Y -= fy
			}
		}

		// Attraction along edges
		for _, e := range g.edges {
			dx := positions[e.From].X - positions[e.To].X
			dy := positions[e.From].Y - positions[e.To].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < 0.01 {
				continue
			}

			force := (dist * dist) / k * (math.Abs(e.Weight) / maxWeight)
			fx := (dx / dist) * force
			fy := (dy / dist) * force

			forces[e.From].X -= fx
			forces[e.From].Y -= fy
			forces[e.To].X += fx
			forces[e.To].Y += fy
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(cfg.Iterations)
		for i := range positions {
			f := math.Sqrt(forces[i].X*forces[i].X + forces[i].Y*forces[i].Y)
			if f > 0 {
				step := math.Min(f, temperature) * cool
				positions[i].X += (forces[i].X / f) * step
				positions[i].Y += (forces[i].Y / f) * step
			}
		}
	}

	byID := make(map[int]Position, n)
	for i, node := range g.nodes {
		byID[node.ID] = positions[i]
	}
	return normalizePositions(byID, cfg.Width, cfg.Height, cfg.Padding), nil
}
