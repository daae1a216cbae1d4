package networks

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedNormalization = errors.New("unsupported normalization")
	ErrUnsupportedLevels        = errors.New("conflict requires exactly two qualifier levels")
	ErrDegenerateGraph          = errors.New("centralization needs at least three actors")
	ErrInvalidOptions           = errors.New("invalid network options")
	ErrNotSquare                = errors.New("matrix is not square")
	ErrNilInput                 = errors.New("nil input")
)

// UnsupportedNormalizationError names the rejected normalization mode.
type UnsupportedNormalizationError struct {
	Mode string
}

func (e *UnsupportedNormalizationError) Error() string {
	return fmt.Sprintf("normalization %q not implemented: %v", e.Mode, ErrUnsupportedNormalization)
}

func (e *UnsupportedNormalizationError) Unwrap() error {
	return ErrUnsupportedNormalization
}

// UnsupportedLevelsError reports the qualifier axis length a conflict
// computation was asked to flip.
type UnsupportedLevelsError struct {
	Levels int
}

func (e *UnsupportedLevelsError) Error() string {
	return fmt.Sprintf("tensor has %d qualifier levels: %v", e.Levels, ErrUnsupportedLevels)
}

func (e *UnsupportedLevelsError) Unwrap() error {
	return ErrUnsupportedLevels
}

// DegenerateGraphError reports the node count that made the centralization
// denominator vanish.
type DegenerateGraphError struct {
	Nodes int
}

func (e *DegenerateGraphError) Error() string {
	return fmt.Sprintf("graph has %d nodes: %v", e.Nodes, ErrDegenerateGraph)
}

func (e *DegenerateGraphError) Unwrap() error {
	return ErrDegenerateGraph
}
