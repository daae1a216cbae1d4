// Package statements turns a table of (actor, concept, qualifier) statements
// into a dense presence tensor indexed by registry ids.
package statements

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dd0wney/discourse-networks/pkg/logging"
	"github.com/dd0wney/discourse-networks/pkg/metrics"
	"github.com/dd0wney/discourse-networks/pkg/registry"
)

// DefaultAttributeColumn is the actor attribute column used by DefaultColumns.
const DefaultAttributeColumn = "party"

// Columns selects the table columns a build reads.
type Columns struct {
	Actor     string `yaml:"actor" validate:"required"`
	Concept   string `yaml:"concept" validate:"required"`
	Qualifier string `yaml:"qualifier" validate:"required"`
	// Attribute is an optional per-actor side column. Empty disables it.
	Attribute string `yaml:"attribute"`
	// QualifierValues, when non-nil, fixes the qualifier axis length to
	// len(QualifierValues) instead of counting distinct observed values.
	QualifierValues []int `yaml:"qualifier_values"`
}

// DefaultColumns returns column selectors with the attribute column set to
// DefaultAttributeColumn.
func DefaultColumns(actor, concept, qualifier string) Columns {
	return Columns{
		Actor:     actor,
		Concept:   concept,
		Qualifier: qualifier,
		Attribute: DefaultAttributeColumn,
	}
}

// Builder builds statement tensors.
type Builder struct {
	logger  logging.Logger
	metrics metrics.Recorder
	verbose bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the builder logger.
func WithLogger(logger logging.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logging.OrNop(logger) }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) BuilderOption {
	return func(b *Builder) { b.metrics = metrics.OrNop(r) }
}

// WithVerbose logs the build summary at info level instead of debug.
func WithVerbose(verbose bool) BuilderOption {
	return func(b *Builder) { b.verbose = verbose }
}

// NewBuilder creates a Builder. Without options it logs and records nothing.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		logger:  logging.NopLogger{},
		metrics: metrics.NopRecorder{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// sourceColumns holds the columns read from the table for one build.
type sourceColumns struct {
	actors     []string
	attributes []string
	concepts   []string
	qualifiers []int
}

// Build reads the selected columns and returns the presence tensor together
// with the actor registry that labels its first axis. Any invalid row aborts
// the whole build.
func (b *Builder) Build(table Table, cols Columns) (*Tensor, *registry.Registry, error) {
	logger := b.logger.With(logging.Component("statements"), logging.BuildID(uuid.NewString()))
	timer := logging.StartTimer(logger, "build statement tensor", logging.Rows(table.Len()))

	tensor, actors, err := b.build(table, cols, logger)
	if err != nil {
		timer.EndError(err)
		b.metrics.RecordBuildFailure(failureReason(err))
		b.metrics.RecordTensorBuild(metrics.StatusError, table.Len(), timer.Elapsed())
		return nil, nil, err
	}

	timer.End(logging.Count(tensor.Nonzero()))
	b.metrics.RecordTensorBuild(metrics.StatusSuccess, table.Len(), timer.Elapsed())
	return tensor, actors, nil
}

func (b *Builder) build(table Table, cols Columns, logger logging.Logger) (*Tensor, *registry.Registry, error) {
	actors, concepts, err := buildRegistries(table, cols)
	if err != nil {
		return nil, nil, err
	}

	// The row pass reads the table again; rows must resolve against the
	// registries built above.
	src, err := readColumns(table, cols)
	if err != nil {
		return nil, nil, err
	}

	levels := len(cols.QualifierValues)
	if cols.QualifierValues == nil {
		levels = countDistinct(src.qualifiers)
	}

	summary := []logging.Field{
		logging.Actors(actors.Len()),
		logging.Concepts(concepts.Len()),
		logging.Levels(levels),
	}
	if b.verbose {
		logger.Info("building statement data", summary...)
	} else {
		logger.Debug("building statement data", summary...)
	}

	tensor := newTensor(actors.Len(), concepts.Len(), levels)

	for row := range src.actors {
		actorID, ok := actors.ID(src.actors[row])
		if !ok {
			return nil, nil, &InvalidKeyError{Column: cols.Actor, Row: row, Name: src.actors[row]}
		}
		conceptID, ok := concepts.ID(src.concepts[row])
		if !ok {
			return nil, nil, &InvalidKeyError{Column: cols.Concept, Row: row, Name: src.concepts[row]}
		}
		q := src.qualifiers[row]
		if q < 0 || q >= levels {
			return nil, nil, &InvalidIndexError{Column: cols.Qualifier, Row: row, Value: q, Levels: levels}
		}

		tensor.set(actorID, conceptID, q)
	}

	return tensor, actors, nil
}

func buildRegistries(table Table, cols Columns) (actors, concepts *registry.Registry, err error) {
	names, err := table.Strings(cols.Actor)
	if err != nil {
		return nil, nil, err
	}

	actors = registry.New("actor")
	if cols.Attribute != "" {
		attributes, err := table.Strings(cols.Attribute)
		if err != nil {
			return nil, nil, err
		}
		actors.Build(registry.Pairs(names, attributes))
	} else {
		actors.Build(registry.Names(names))
	}

	conceptNames, err := table.Strings(cols.Concept)
	if err != nil {
		return nil, nil, err
	}
	concepts = registry.New("concept")
	concepts.Build(registry.Names(conceptNames))

	return actors, concepts, nil
}

func readColumns(table Table, cols Columns) (*sourceColumns, error) {
	var (
		src sourceColumns
		err error
	)

	if src.actors, err = table.Strings(cols.Actor); err != nil {
		return nil, err
	}
	if cols.Attribute != "" {
		if src.attributes, err = table.Strings(cols.Attribute); err != nil {
			return nil, err
		}
	}
	if src.concepts, err = table.Strings(cols.Concept); err != nil {
		return nil, err
	}
	if src.qualifiers, err = table.Ints(cols.Qualifier); err != nil {
		return nil, err
	}

	n := len(src.actors)
	if len(src.concepts) != n || len(src.qualifiers) != n ||
		(src.attributes != nil && len(src.attributes) != n) {
		return nil, ErrColumnLength
	}
	return &src, nil
}

func countDistinct(values []int) int {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidKey):
		return "invalid_key"
	case errors.Is(err, ErrInvalidIndex):
		return "invalid_index"
	case errors.Is(err, ErrColumnNotFound):
		return "column_not_found"
	case errors.Is(err, ErrColumnType):
		return "column_type"
	case errors.Is(err, ErrColumnLength):
		return "column_length"
	default:
		return "other"
	}
}
