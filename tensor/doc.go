// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense Vector and Matrix containers the
// training engine computes with.
//
// Both containers hold float64 scalars. A Matrix stores its elements in a
// single row-major slice. Operations on incompatible shapes return an error
// wrapping ErrVectorDimensionMismatch or ErrMatDimensionMismatch and leave
// their operands unmodified:
//
//	a, _ := tensor.MatrixFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := tensor.MatrixFromSlice(3, 2, []float64{7, 8, 9, 10, 11, 12})
//	c, err := a.MatMul(b) // [[58 64] [139 154]]
package tensor
