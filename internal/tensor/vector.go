package tensor

import (
	"fmt"
	"strings"
)

// Vector is an ordered, fixed-length sequence of Scalars.
//
// The length of a Vector is set at construction and never changes. Elements
// are mutated in place with Set, or through the slice returned by Data.
//
// Example:
//
//	v := tensor.FromSlice([]tensor.Scalar{1, 2, 3})
//	w := tensor.Ones(3)
//	sum, err := v.Add(w) // [2, 3, 4]
type Vector struct {
	data []Scalar
}

// NewVector allocates a vector of length n with every element set to zero.
func NewVector(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("tensor: negative vector length %d", n))
	}
	return &Vector{data: make([]Scalar, n)}
}

// Zeros creates a zero-filled vector of length n.
func Zeros(n int) *Vector {
	return NewVector(n)
}

// ZerosDistinct creates a zero-filled vector of length n whose elements are
// explicitly written rather than relying on the allocator's zeroing.
func ZerosDistinct(n int) *Vector {
	return Full(n, 0)
}

// Ones creates a vector of length n filled with ones.
func Ones(n int) *Vector {
	return Full(n, 1)
}

// Full creates a vector of length n filled with value.
func Full(n int, value Scalar) *Vector {
	v := NewVector(n)
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// FromSlice creates a vector from a Go slice.
// The slice is copied into the vector's storage.
func FromSlice(data []Scalar) *Vector {
	v := NewVector(len(data))
	copy(v.data, data)
	return v
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector) IsEmpty() bool {
	return len(v.data) == 0
}

// Shape returns the vector's shape as a single column.
func (v *Vector) Shape() Shape {
	return Shape{Rows: len(v.data), Cols: 1}
}

// Data returns the backing storage.
//
// Writes through the returned slice mutate the vector. The slice must not be
// appended to.
func (v *Vector) Data() []Scalar {
	return v.data
}

// Get returns the element at idx. The second result is false when idx is
// out of range.
func (v *Vector) Get(idx int) (Scalar, bool) {
	if idx < 0 || idx >= len(v.data) {
		return 0, false
	}
	return v.data[idx], true
}

// Set writes s at idx. Out-of-range writes fail with ErrIndexOutOfBounds
// and leave the vector unchanged.
func (v *Vector) Set(idx int, s Scalar) error {
	if idx < 0 || idx >= len(v.data) {
		return &ShapeError{
			Op:    "Vector.Set",
			Left:  v.Shape(),
			Right: Shape{Rows: idx, Cols: 1},
			Err:   ErrIndexOutOfBounds,
		}
	}
	v.data[idx] = s
	return nil
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	return FromSlice(v.data)
}

// Add returns v + other elementwise.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if len(v.data) != len(other.data) {
		return nil, mismatch("Vector.Add", v.Shape(), other.Shape(), ErrVectorDimensionMismatch)
	}
	out := NewVector(len(v.data))
	for i, a := range v.data {
		out.data[i] = a + other.data[i]
	}
	return out, nil
}

// Sub returns v - other elementwise.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if len(v.data) != len(other.data) {
		return nil, mismatch("Vector.Sub", v.Shape(), other.Shape(), ErrVectorDimensionMismatch)
	}
	out := NewVector(len(v.data))
	for i, a := range v.data {
		out.data[i] = a - other.data[i]
	}
	return out, nil
}

// Scale returns s * v.
func (v *Vector) Scale(s Scalar) *Vector {
	out := NewVector(len(v.data))
	for i, a := range v.data {
		out.data[i] = a * s
	}
	return out
}

// Dot returns the inner product of v and other.
func (v *Vector) Dot(other *Vector) (Scalar, error) {
	if len(v.data) != len(other.data) {
		return 0, mismatch("Vector.Dot", v.Shape(), other.Shape(), ErrVectorDimensionMismatch)
	}
	var sum Scalar
	for i, a := range v.data {
		sum += a * other.data[i]
	}
	return sum, nil
}

// Sum returns the sum of all elements, accumulated left to right.
func (v *Vector) Sum() Scalar {
	var sum Scalar
	for _, a := range v.data {
		sum += a
	}
	return sum
}

// AllClose reports whether v and other have the same length and every pair
// of elements differs by at most tol.
func (v *Vector) AllClose(other *Vector, tol Scalar) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i, a := range v.data {
		if Abs(a-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v *Vector) String() string {
	parts := make([]string, len(v.data))
	for i, a := range v.data {
		parts[i] = fmt.Sprintf("%g", a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
