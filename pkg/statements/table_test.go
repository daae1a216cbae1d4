package statements

import (
	"errors"
	"testing"
)

func TestFrame_AddAndRead(t *testing.T) {
	f := NewFrame()
	if err := f.AddStrings("actor", []string{"A", "B"}); err != nil {
		t.Fatalf("AddStrings failed: %v", err)
	}
	if err := f.AddInts("qualifier", []int{0, 1}); err != nil {
		t.Fatalf("AddInts failed: %v", err)
	}

	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}

	qs, err := f.Strings("qualifier")
	if err != nil {
		t.Fatalf("Strings(qualifier) failed: %v", err)
	}
	if qs[0] != "0" || qs[1] != "1" {
		t.Errorf("Strings(qualifier) = %v, want [0 1]", qs)
	}

	cols := f.Columns()
	if len(cols) != 2 || cols[0] != "actor" || cols[1] != "qualifier" {
		t.Errorf("Columns() = %v, want [actor qualifier]", cols)
	}
}

func TestFrame_ParsesIntegerStrings(t *testing.T) {
	f := NewFrame()
	f.AddStrings("agreement", []string{"1", " 0 "})

	got, err := f.Ints("agreement")
	if err != nil {
		t.Fatalf("Ints failed: %v", err)
	}
	if got[0] != 1 || got[1] != 0 {
		t.Errorf("Ints = %v, want [1 0]", got)
	}
}

func TestFrame_Errors(t *testing.T) {
	tests := []struct {
		name string
		run  func(f *Frame) error
		want error
	}{
		{
			name: "missing column",
			run: func(f *Frame) error {
				_, err := f.Strings("nope")
				return err
			},
			want: ErrColumnNotFound,
		},
		{
			name: "length mismatch",
			run: func(f *Frame) error {
				return f.AddStrings("concept", []string{"only one"})
			},
			want: ErrColumnLength,
		},
		{
			name: "duplicate",
			run: func(f *Frame) error {
				return f.AddStrings("actor", []string{"x", "y"})
			},
			want: ErrDuplicateColumn,
		},
		{
			name: "empty name",
			run: func(f *Frame) error {
				return f.AddInts(" ", []int{1, 2})
			},
			want: ErrEmptyColumnName,
		},
		{
			name: "not an integer",
			run: func(f *Frame) error {
				_, err := f.Ints("actor")
				return err
			},
			want: ErrColumnType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame()
			if err := f.AddStrings("actor", []string{"A", "B"}); err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			err := tt.run(f)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFrame_CopiesInput(t *testing.T) {
	values := []string{"A"}
	f := NewFrame()
	f.AddStrings("actor", values)
	values[0] = "mutated"

	got, _ := f.Strings("actor")
	if got[0] != "A" {
		t.Errorf("Frame aliased caller slice: got %q", got[0])
	}

	got[0] = "changed"
	again, _ := f.Strings("actor")
	if again[0] != "A" {
		t.Errorf("Strings() result aliased frame storage: got %q", again[0])
	}
}
