package networks

import (
	"math"

	"github.com/dd0wney/discourse-networks/pkg/logging"
	"github.com/dd0wney/discourse-networks/pkg/metrics"
)

// Centralization is a Freeman degree centralization summary.
type Centralization struct {
	Score     float64
	MaxDegree int
	// Degrees holds each node's count of non-zero row entries.
	Degrees []int
}

// DegreeCentralization computes sum(max_degree - degree_i) / ((v-1)(v-2))
// over the nodes of an adjacency matrix, where a node's degree is the number
// of non-zero entries in its row. Graphs with fewer than three nodes have no
// defined score and return ErrDegenerateGraph.
func (e *Engine) DegreeCentralization(m *Matrix) (*Centralization, error) {
	if m == nil {
		e.metrics.RecordCentralization(metrics.StatusError)
		return nil, ErrNilInput
	}

	v := m.Len()
	if v <= 2 {
		err := &DegenerateGraphError{Nodes: v}
		e.logger.Warn("degree centralization undefined", logging.Count(v), logging.Error(err))
		e.metrics.RecordCentralization(metrics.StatusError)
		return nil, err
	}

	degrees := make([]int, v)
	maxDegree := 0
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			if math.Abs(m.At(i, j)) > 0 {
				degrees[i]++
			}
		}
		maxDegree = max(maxDegree, degrees[i])
	}

	spread := 0
	for _, d := range degrees {
		spread += maxDegree - d
	}

	result := &Centralization{
		Score:     float64(spread) / float64(v*v-3*v+2),
		MaxDegree: maxDegree,
		Degrees:   degrees,
	}

	e.logger.Debug("degree centralization",
		logging.Count(v),
		logging.Float64("score", result.Score),
		logging.Int("max_degree", maxDegree),
	)
	e.metrics.RecordCentralization(metrics.StatusSuccess)
	return result, nil
}
