package tensor

import (
	"fmt"
	"strings"
)

// Matrix is a fixed rows x cols grid of Scalars stored as a single
// row-major sequence.
//
// Element (i, j) lives at data[i*cols+j]. The invariant
// len(data) == rows*cols holds for the lifetime of the matrix.
//
// Example:
//
//	a, _ := tensor.MatrixFromSlice(2, 3, []tensor.Scalar{1, 2, 3, 4, 5, 6})
//	b := a.Transpose()  // 3x2
//	c, err := a.MatMul(b) // 2x2
type Matrix struct {
	rows int
	cols int
	data []Scalar
}

// NewMatrix allocates a rows x cols matrix filled with zeros.
func NewMatrix(rows, cols int) *Matrix {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]Scalar, s.NumElements())}
}

// MatrixZeros creates a zero-filled rows x cols matrix.
func MatrixZeros(rows, cols int) *Matrix {
	return NewMatrix(rows, cols)
}

// MatrixOnes creates a rows x cols matrix filled with ones.
func MatrixOnes(rows, cols int) *Matrix {
	return MatrixFull(rows, cols, 1)
}

// MatrixFull creates a rows x cols matrix filled with value.
func MatrixFull(rows, cols int, value Scalar) *Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = value
	}
	return m
}

// Identity creates the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// MatrixFromSlice creates a rows x cols matrix from row-major data.
// The slice is copied into the matrix's storage.
func MatrixFromSlice(rows, cols int, data []Scalar) (*Matrix, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != len(data) {
		return nil, &ShapeError{
			Op:    "MatrixFromSlice",
			Left:  s,
			Right: Shape{Rows: len(data), Cols: 1},
			Err:   ErrMatDimensionMismatch,
		}
	}
	m := NewMatrix(rows, cols)
	copy(m.data, data)
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// Data returns the row-major backing storage.
//
// Writes through the returned slice mutate the matrix. The slice must not be
// appended to.
func (m *Matrix) Data() []Scalar {
	return m.data
}

// Get returns the element at (row, col). The second result is false when
// either index is out of range.
func (m *Matrix) Get(row, col int) (Scalar, bool) {
	if !m.inBounds(row, col) {
		return 0, false
	}
	return m.data[row*m.cols+col], true
}

// Set writes s at (row, col). Out-of-range writes fail with
// ErrMatrixIndexOutOfBounds and leave the matrix unchanged.
func (m *Matrix) Set(row, col int, s Scalar) error {
	if !m.inBounds(row, col) {
		return &ShapeError{
			Op:    "Matrix.Set",
			Left:  m.Shape(),
			Right: Shape{Rows: row, Cols: col},
			Err:   ErrMatrixIndexOutOfBounds,
		}
	}
	m.data[row*m.cols+col] = s
	return nil
}

func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Row returns a copy of row i as a Vector. The second result is false when
// i is out of range.
func (m *Matrix) Row(i int) (*Vector, bool) {
	if i < 0 || i >= m.rows {
		return nil, false
	}
	return FromSlice(m.data[i*m.cols : (i+1)*m.cols]), true
}

// SelectRows gathers the given rows, in order, into a freshly allocated
// matrix. The result never aliases m.
func (m *Matrix) SelectRows(indices []int) (*Matrix, error) {
	out := NewMatrix(len(indices), m.cols)
	for k, i := range indices {
		if i < 0 || i >= m.rows {
			return nil, &ShapeError{
				Op:    "Matrix.SelectRows",
				Left:  m.Shape(),
				Right: Shape{Rows: i, Cols: 0},
				Err:   ErrMatrixIndexOutOfBounds,
			}
		}
		copy(out.data[k*m.cols:(k+1)*m.cols], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out, nil
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Transpose returns a new cols x rows matrix. The receiver is not modified.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// MatMul returns the matrix product m * other.
//
// result[i][j] = sum_k m[i][k] * other[k][j], accumulated sequentially.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, mismatch("Matrix.MatMul", m.Shape(), other.Shape(), ErrMatDimensionMismatch)
	}
	out := NewMatrix(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum Scalar
			for k := 0; k < m.cols; k++ {
				sum += m.data[i*m.cols+k] * other.data[k*other.cols+j]
			}
			out.data[i*other.cols+j] = sum
		}
	}
	return out, nil
}

// MulVec returns the matrix-vector product m * v.
func (m *Matrix) MulVec(v *Vector) (*Vector, error) {
	if m.cols != v.Len() {
		return nil, mismatch("Matrix.MulVec", m.Shape(), v.Shape(), ErrMatDimensionMismatch)
	}
	out := NewVector(m.rows)
	for i := 0; i < m.rows; i++ {
		var sum Scalar
		row := m.data[i*m.cols : (i+1)*m.cols]
		for k, a := range row {
			sum += a * v.data[k]
		}
		out.data[i] = sum
	}
	return out, nil
}

// Add returns m + other elementwise.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, mismatch("Matrix.Add", m.Shape(), other.Shape(), ErrMatDimensionMismatch)
	}
	out := NewMatrix(m.rows, m.cols)
	for i, a := range m.data {
		out.data[i] = a + other.data[i]
	}
	return out, nil
}

// Sub returns m - other elementwise.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, mismatch("Matrix.Sub", m.Shape(), other.Shape(), ErrMatDimensionMismatch)
	}
	out := NewMatrix(m.rows, m.cols)
	for i, a := range m.data {
		out.data[i] = a - other.data[i]
	}
	return out, nil
}

// Scale returns s * m.
func (m *Matrix) Scale(s Scalar) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i, a := range m.data {
		out.data[i] = a * s
	}
	return out
}

// AllClose reports whether m and other have the same shape and every pair
// of elements differs by at most tol.
func (m *Matrix) AllClose(other *Matrix, tol Scalar) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, a := range m.data {
		if Abs(a-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		row, _ := m.Row(i)
		sb.WriteString(row.String())
	}
	sb.WriteString("]")
	return sb.String()
}
