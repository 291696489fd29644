package tensor

import "fmt"

// Shape describes the dimensions of a dense container.
//
// A Vector of length n has Shape{Rows: n, Cols: 1}. A Matrix has its own
// row and column counts.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are non-negative.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("invalid shape %v (dimensions must be >= 0)", s)
	}
	return nil
}

// Transposed returns the shape with rows and columns swapped.
func (s Shape) Transposed() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}
