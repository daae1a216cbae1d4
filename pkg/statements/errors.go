package statements

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidKey      = errors.New("invalid key")
	ErrInvalidIndex    = errors.New("invalid qualifier index")
	ErrColumnNotFound  = errors.New("column not found")
	ErrColumnLength    = errors.New("column length mismatch")
	ErrColumnType      = errors.New("column type mismatch")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrEmptyColumnName = errors.New("column name is empty")
	ErrInvalidCell     = errors.New("tensor cell must be 0 or 1")
	ErrRaggedTensor    = errors.New("tensor data is not rectangular")
)

// InvalidKeyError reports a row whose actor or concept did not resolve
// through its registry.
type InvalidKeyError struct {
	Column string
	Row    int
	Name   string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("row %d: %s %q not registered: %v", e.Row, e.Column, e.Name, ErrInvalidKey)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}

// InvalidIndexError reports a qualifier value that cannot index the
// qualifier axis.
type InvalidIndexError struct {
	Column string
	Row    int
	Value  int
	Levels int
}

func (e *InvalidIndexError) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("row %d: %s value %d is negative: %v", e.Row, e.Column, e.Value, ErrInvalidIndex)
	}
	return fmt.Sprintf("row %d: %s value %d outside [0, %d): %v", e.Row, e.Column, e.Value, e.Levels, ErrInvalidIndex)
}

func (e *InvalidIndexError) Unwrap() error {
	return ErrInvalidIndex
}

// ColumnError wraps a table access failure with the column involved.
type ColumnError struct {
	Column string
	Cause  error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, e.Cause)
}

func (e *ColumnError) Unwrap() error {
	return e.Cause
}
