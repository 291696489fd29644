package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrIndexOutOfBounds        = errors.New("index out of bounds")
	ErrMatrixIndexOutOfBounds  = errors.New("matrix index out of bounds")
	ErrVectorDimensionMismatch = errors.New("vector dimension mismatch")
	ErrMatDimensionMismatch    = errors.New("matrix dimension mismatch")
	ErrInsufficientData        = errors.New("insufficient data")
)

// ShapeError provides detailed information about an operation rejected
// because of its operands' shapes or an index outside a container.
//
// ShapeError wraps one of the sentinel errors above, so callers can match it
// with errors.Is.
type ShapeError struct {
	Op    string // Operation that failed (e.g., "Vector.Add", "Matrix.MulVec")
	Left  Shape  // Shape of the receiver
	Right Shape  // Shape of the other operand, or the offending index
	Err   error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: %v vs %v", e.Op, e.Err, e.Left, e.Right)
}

// Unwrap returns the sentinel error.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func mismatch(op string, left, right Shape, sentinel error) error {
	return &ShapeError{Op: op, Left: left, Right: right, Err: sentinel}
}
