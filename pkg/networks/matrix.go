package networks

// Matrix is a dense square float64 matrix indexed by actor id.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix returns an n × n zero matrix.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// MatrixFromRows copies rows into a matrix. Every row must have len(rows)
// entries.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	m := NewMatrix(len(rows))
	for i, row := range rows {
		if len(row) != m.n {
			return nil, ErrNotSquare
		}
		copy(m.data[i*m.n:(i+1)*m.n], row)
	}
	return m, nil
}

// Len returns the number of rows (and columns).
func (m *Matrix) Len() int {
	return m.n
}

// At returns entry (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Set writes entry (i, j) only.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// SetSymmetric writes v to (i, j) and mirrors it to (j, i).
func (m *Matrix) SetSymmetric(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...)
}

// Rows returns a copy of the matrix as nested slices.
func (m *Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

// IsSymmetric reports whether m equals its transpose.
func (m *Matrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := 0; j < i; j++ {
			if m.At(i, j) != m.At(j, i) {
				return false
			}
		}
	}
	return true
}

// NonzeroPairs counts unordered off-diagonal pairs with a non-zero entry
// below the diagonal.
func (m *Matrix) NonzeroPairs() int {
	count := 0
	for i := 0; i < m.n; i++ {
		for j := 0; j < i; j++ {
			if m.At(i, j) != 0 {
				count++
			}
		}
	}
	return count
}
