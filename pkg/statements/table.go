package statements

import (
	"strconv"
	"strings"
)

// Table is a read-only columnar view of statement rows. Implementations
// return fresh slices; callers may not rely on them aliasing table storage.
type Table interface {
	Len() int
	Strings(column string) ([]string, error)
	Ints(column string) ([]int, error)
}

type column struct {
	numeric bool
	strs    []string
	ints    []int
}

// Frame is an in-memory Table built column by column.
type Frame struct {
	columns map[string]*column
	order   []string
	rows    int
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{columns: make(map[string]*column)}
}

// AddStrings adds a string column. The values are copied.
func (f *Frame) AddStrings(name string, values []string) error {
	if err := f.checkNew(name, len(values)); err != nil {
		return err
	}
	f.add(name, &column{strs: append([]string(nil), values...)}, len(values))
	return nil
}

// AddInts adds an integer column. The values are copied.
func (f *Frame) AddInts(name string, values []int) error {
	if err := f.checkNew(name, len(values)); err != nil {
		return err
	}
	f.add(name, &column{numeric: true, ints: append([]int(nil), values...)}, len(values))
	return nil
}

func (f *Frame) checkNew(name string, n int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyColumnName
	}
	if _, exists := f.columns[name]; exists {
		return &ColumnError{Column: name, Cause: ErrDuplicateColumn}
	}
	if len(f.order) > 0 && n != f.rows {
		return &ColumnError{Column: name, Cause: ErrColumnLength}
	}
	return nil
}

func (f *Frame) add(name string, c *column, n int) {
	f.columns[name] = c
	f.order = append(f.order, name)
	f.rows = n
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// Columns returns column names in insertion order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.order...)
}

// Strings returns a column as strings. Integer columns are formatted.
func (f *Frame) Strings(name string) ([]string, error) {
	c, ok := f.columns[name]
	if !ok {
		return nil, &ColumnError{Column: name, Cause: ErrColumnNotFound}
	}
	if !c.numeric {
		return append([]string(nil), c.strs...), nil
	}

	out := make([]string, len(c.ints))
	for i, v := range c.ints {
		out[i] = strconv.Itoa(v)
	}
	return out, nil
}

// Ints returns a column as integers. String columns are parsed and fail
// with ErrColumnType on the first non-integer cell.
func (f *Frame) Ints(name string) ([]int, error) {
	c, ok := f.columns[name]
	if !ok {
		return nil, &ColumnError{Column: name, Cause: ErrColumnNotFound}
	}
	if c.numeric {
		return append([]int(nil), c.ints...), nil
	}

	out := make([]int, len(c.strs))
	for i, s := range c.strs {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, &ColumnError{Column: name, Cause: ErrColumnType}
		}
		out[i] = v
	}
	return out, nil
}
