// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/synapse-ml/synapse/internal/tensor"

// Scalar is a single 64-bit floating-point value.
type Scalar = tensor.Scalar

// Shape describes the dimensions of a container.
type Shape = tensor.Shape

// Vector is a fixed-length sequence of scalars.
type Vector = tensor.Vector

// Matrix is a rows x cols grid of scalars in row-major order.
type Matrix = tensor.Matrix

// ShapeError reports the operands of a failed shape-sensitive operation.
type ShapeError = tensor.ShapeError

// Errors returned by container operations.
var (
	ErrIndexOutOfBounds        = tensor.ErrIndexOutOfBounds
	ErrMatrixIndexOutOfBounds  = tensor.ErrMatrixIndexOutOfBounds
	ErrVectorDimensionMismatch = tensor.ErrVectorDimensionMismatch
	ErrMatDimensionMismatch    = tensor.ErrMatDimensionMismatch
	ErrInsufficientData        = tensor.ErrInsufficientData
)

// NewVector allocates a zero-filled vector of length n.
func NewVector(n int) *Vector { return tensor.NewVector(n) }

// Zeros creates a zero-filled vector.
func Zeros(n int) *Vector { return tensor.Zeros(n) }

// Ones creates a vector of ones.
func Ones(n int) *Vector { return tensor.Ones(n) }

// Full creates a vector with every element set to value.
func Full(n int, value Scalar) *Vector { return tensor.Full(n, value) }

// FromSlice copies data into a new vector.
func FromSlice(data []Scalar) *Vector { return tensor.FromSlice(data) }

// NewMatrix allocates a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix { return tensor.NewMatrix(rows, cols) }

// MatrixOnes creates a matrix of ones.
func MatrixOnes(rows, cols int) *Matrix { return tensor.MatrixOnes(rows, cols) }

// Identity creates the n x n identity matrix.
func Identity(n int) *Matrix { return tensor.Identity(n) }

// MatrixFromSlice copies row-major data into a new matrix.
func MatrixFromSlice(rows, cols int, data []Scalar) (*Matrix, error) {
	return tensor.MatrixFromSlice(rows, cols, data)
}
