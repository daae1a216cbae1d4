// Package pipeline runs a full discourse network analysis: statement table to
// tensor, tensor to congruence and conflict networks, networks to graphs and
// centralization scores.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/dd0wney/discourse-networks/pkg/config"
	"github.com/dd0wney/discourse-networks/pkg/graphview"
	"github.com/dd0wney/discourse-networks/pkg/logging"
	"github.com/dd0wney/discourse-networks/pkg/metrics"
	"github.com/dd0wney/discourse-networks/pkg/networks"
	"github.com/dd0wney/discourse-networks/pkg/registry"
	"github.com/dd0wney/discourse-networks/pkg/statements"
)

// Network is one scored actor network with its derived views.
type Network struct {
	Kind   string
	Matrix *networks.Matrix
	Graph  *graphview.Graph
	// Centralization is nil when the graph has fewer than three actors.
	Centralization *networks.Centralization
}

// Result holds everything a run produces.
type Result struct {
	Tensor     *statements.Tensor
	Actors     *registry.Registry
	Congruence *Network
	// Conflict is nil unless the qualifier has exactly two levels.
	Conflict *Network
}

// Runner executes runs with a fixed configuration.
type Runner struct {
	cfg     config.Config
	logger  logging.Logger
	builder *statements.Builder
	engine  *networks.Engine
}

// NewRunner validates cfg and wires a builder and engine that share the
// given logger and recorder. Either may be nil.
func NewRunner(cfg config.Config, logger logging.Logger, recorder metrics.Recorder) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = logging.OrNop(logger)
	recorder = metrics.OrNop(recorder)

	return &Runner{
		cfg:    cfg,
		logger: logger.With(logging.Component("pipeline")),
		builder: statements.NewBuilder(
			statements.WithLogger(logger),
			statements.WithMetrics(recorder),
			statements.WithVerbose(cfg.Verbose),
		),
		engine: networks.NewEngine(
			networks.WithLogger(logger),
			networks.WithMetrics(recorder),
		),
	}, nil
}

// Run analyses one statement table.
func (r *Runner) Run(table statements.Table) (*Result, error) {
	tensor, actors, err := r.builder.Build(table, r.cfg.Columns)
	if err != nil {
		return nil, fmt.Errorf("build tensor: %w", err)
	}
	res := &Result{Tensor: tensor, Actors: actors}

	congruence, err := r.engine.Congruence(tensor, r.cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("congruence network: %w", err)
	}
	if res.Congruence, err = r.network(networks.KindCongruence, congruence, actors); err != nil {
		return nil, err
	}

	if tensor.Levels() != 2 {
		r.logger.Info("skipping conflict network", logging.Levels(tensor.Levels()))
		return res, nil
	}

	conflict, err := r.engine.Conflict(tensor, r.cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("conflict network: %w", err)
	}
	if res.Conflict, err = r.network(networks.KindConflict, conflict, actors); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Runner) network(kind string, m *networks.Matrix, actors *registry.Registry) (*Network, error) {
	graph, err := graphview.FromMatrix(m, actors.Names())
	if err != nil {
		return nil, fmt.Errorf("%s graph: %w", kind, err)
	}

	n := &Network{Kind: kind, Matrix: m, Graph: graph}
	c, err := r.engine.DegreeCentralization(m)
	switch {
	case err == nil:
		n.Centralization = c
	case errors.Is(err, networks.ErrDegenerateGraph):
	default:
		return nil, fmt.Errorf("%s centralization: %w", kind, err)
	}

	r.logger.Debug("network ready",
		logging.String("kind", kind),
		logging.Count(len(graph.Edges())),
	)
	return n, nil
}
