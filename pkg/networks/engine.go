// Package networks derives actor-to-actor congruence and conflict networks
// from a statement tensor and summarizes adjacency matrices with degree
// centralization.
package networks

import (
	"github.com/dd0wney/discourse-networks/pkg/logging"
	"github.com/dd0wney/discourse-networks/pkg/metrics"
	"github.com/dd0wney/discourse-networks/pkg/statements"
)

// Network kinds, used as log and metric labels.
const (
	KindCongruence = "congruence"
	KindConflict   = "conflict"
)

// Engine computes actor networks. It holds no per-call state.
type Engine struct {
	logger  logging.Logger
	metrics metrics.Recorder
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = logging.OrNop(logger) }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) EngineOption {
	return func(e *Engine) { e.metrics = metrics.OrNop(r) }
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:  logging.NopLogger{},
		metrics: metrics.NopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logging.Component("networks"))
	return e
}

type scoreFunc func(i, j profile) int

// Congruence scores every actor pair by the (concept, qualifier) cells they
// share.
func (e *Engine) Congruence(t *statements.Tensor, opts Options) (*Matrix, error) {
	return e.compute(KindCongruence, t, opts, congruenceScore)
}

// Conflict scores every actor pair by the concepts they share with opposite
// qualifier levels. The tensor must have exactly two qualifier levels.
func (e *Engine) Conflict(t *statements.Tensor, opts Options) (*Matrix, error) {
	if t != nil && t.Levels() != 2 {
		err := &UnsupportedLevelsError{Levels: t.Levels()}
		e.fail(KindConflict, opts, err)
		return nil, err
	}
	return e.compute(KindConflict, t, opts, conflictScore)
}

func (e *Engine) compute(kind string, t *statements.Tensor, opts Options, score scoreFunc) (*Matrix, error) {
	if t == nil {
		e.fail(kind, opts, ErrNilInput)
		return nil, ErrNilInput
	}
	if err := opts.validate(); err != nil {
		e.fail(kind, opts, err)
		return nil, err
	}

	timer := logging.StartTimer(e.logger, "compute actor network",
		logging.Operation(kind),
		logging.Normalization(opts.Normalization.label()),
		logging.Actors(t.Actors()),
	)

	profiles := buildProfiles(t, kind == KindConflict)
	net := NewMatrix(len(profiles))
	retained := 0

	// Only j < i is scored; (j, i) is mirrored, never recomputed.
	for i := range profiles {
		for j := 0; j < i; j++ {
			raw := score(profiles[i], profiles[j])
			if raw < opts.MinConcepts {
				continue
			}

			denom, _ := opts.Normalization.denominator(profiles[i].total, profiles[j].total)
			if denom == 0 {
				continue
			}
			net.SetSymmetric(i, j, float64(raw)/denom)
			retained++
		}
	}

	timer.End(logging.Count(retained))
	e.metrics.RecordNetwork(kind, opts.Normalization.label(), metrics.StatusSuccess, retained, timer.Elapsed())
	return net, nil
}

func (e *Engine) fail(kind string, opts Options, err error) {
	e.logger.Error("actor network rejected",
		logging.Operation(kind),
		logging.Normalization(string(opts.Normalization)),
		logging.Error(err),
	)
	e.metrics.RecordNetwork(kind, opts.Normalization.label(), metrics.StatusError, 0, 0)
}
