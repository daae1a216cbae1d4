package networks

import (
	"errors"
	"testing"
)

func TestDegreeCentralization_Star(t *testing.T) {
	m, err := MatrixFromRows([][]float64{
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	})
	if err != nil {
		t.Fatalf("MatrixFromRows failed: %v", err)
	}

	result, err := NewEngine().DegreeCentralization(m)
	if err != nil {
		t.Fatalf("DegreeCentralization failed: %v", err)
	}

	if result.MaxDegree != 3 {
		t.Errorf("MaxDegree = %d, want 3", result.MaxDegree)
	}
	// (0 + 2 + 2 + 2) / (16 - 12 + 2)
	if result.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", result.Score)
	}
	want := []int{3, 1, 1, 1}
	for i, d := range want {
		if result.Degrees[i] != d {
			t.Errorf("Degrees[%d] = %d, want %d", i, result.Degrees[i], d)
		}
	}
}

func TestDegreeCentralization_NegativeWeightsCount(t *testing.T) {
	m, _ := MatrixFromRows([][]float64{
		{0, -0.5, 0},
		{-0.5, 0, 0.25},
		{0, 0.25, 0},
	})

	result, err := NewEngine().DegreeCentralization(m)
	if err != nil {
		t.Fatalf("DegreeCentralization failed: %v", err)
	}
	// Degrees 1, 2, 1 -> (1 + 0 + 1) / 2
	if result.MaxDegree != 2 || result.Score != 1.0 {
		t.Errorf("result = %+v, want max 2 score 1", result)
	}
}

func TestDegreeCentralization_Complete(t *testing.T) {
	m, _ := MatrixFromRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})

	result, err := NewEngine().DegreeCentralization(m)
	if err != nil {
		t.Fatalf("DegreeCentralization failed: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("Score = %v, want 0 for a complete graph", result.Score)
	}
}

func TestDegreeCentralization_Degenerate(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		_, err := NewEngine().DegreeCentralization(NewMatrix(n))
		if !errors.Is(err, ErrDegenerateGraph) {
			t.Errorf("v=%d: err = %v, want ErrDegenerateGraph", n, err)
		}

		var degErr *DegenerateGraphError
		if errors.As(err, &degErr) && degErr.Nodes != n {
			t.Errorf("Nodes = %d, want %d", degErr.Nodes, n)
		}
	}
}

func TestDegreeCentralization_Nil(t *testing.T) {
	if _, err := NewEngine().DegreeCentralization(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("err = %v, want ErrNilInput", err)
	}
}

func TestMatrixFromRows_NotSquare(t *testing.T) {
	_, err := MatrixFromRows([][]float64{{0, 1}, {1}})
	if !errors.Is(err, ErrNotSquare) {
		t.Errorf("err = %v, want ErrNotSquare", err)
	}
}

func TestMatrix_Accessors(t *testing.T) {
	m := NewMatrix(3)
	m.SetSymmetric(2, 0, 0.5)
	m.Set(1, 2, 1)

	if m.At(0, 2) != 0.5 || m.At(2, 0) != 0.5 {
		t.Error("SetSymmetric should mirror the entry")
	}
	if m.IsSymmetric() {
		t.Error("one-sided Set should break symmetry")
	}
	if m.NonzeroPairs() != 1 {
		t.Errorf("NonzeroPairs() = %d, want 1", m.NonzeroPairs())
	}

	row := m.Row(0)
	row[2] = 9
	if m.At(0, 2) != 0.5 {
		t.Error("Row must return a copy")
	}
}
