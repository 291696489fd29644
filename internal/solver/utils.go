package solver

import (
	"fmt"
	"math"

	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// Batch is one mini-batch: a fresh copy of the selected feature rows and
// their targets.
type Batch struct {
	X *tensor.Matrix
	Y *tensor.Vector
}

// ShuffleIndices returns a uniformly random permutation of [0, n).
func ShuffleIndices(n int, src *random.Source) []int {
	return src.Perm(n)
}

// Batches shuffles the rows of x (and y with them) and splits them into
// contiguous chunks of batchSize rows. The last chunk may be shorter.
//
// Every batch owns its storage; none aliases x or y.
func Batches(x *tensor.Matrix, y *tensor.Vector, batchSize int, src *random.Source) ([]Batch, error) {
	if x.Rows() != y.Len() {
		return nil, &tensor.ShapeError{Op: "solver.Batches", Left: x.Shape(), Right: y.Shape(), Err: tensor.ErrMatDimensionMismatch}
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("solver.Batches: batch size must be > 0 (got %d)", batchSize)
	}

	idx := ShuffleIndices(x.Rows(), src)
	yData := y.Data()
	batches := make([]Batch, 0, (len(idx)+batchSize-1)/batchSize)

	for start := 0; start < len(idx); start += batchSize {
		chunk := idx[start:min(start+batchSize, len(idx))]

		bx, err := x.SelectRows(chunk)
		if err != nil {
			return nil, err
		}
		by := tensor.NewVector(len(chunk))
		for k, i := range chunk {
			by.Data()[k] = yData[i]
		}
		batches = append(batches, Batch{X: bx, Y: by})
	}
	return batches, nil
}

// ShouldStop reports whether training should halt after observing current.
//
// hasBest is false before the first epoch; nothing is compared then. When
// current is strictly lower than best the counter resets, otherwise it is
// incremented and ShouldStop returns true once it reaches patience. With a
// patience of 0 the first epoch without improvement stops.
func ShouldStop(best tensor.Scalar, hasBest bool, current tensor.Scalar, patience int, noImprove *int) bool {
	if !hasBest {
		return false
	}
	if current < best {
		*noImprove = 0
		return false
	}
	*noImprove++
	return *noImprove >= patience
}

// EarlyStopping tracks the best validation loss seen so far and the number
// of consecutive epochs without improvement.
type EarlyStopping struct {
	Patience int

	best      tensor.Scalar
	hasBest   bool
	noImprove int
}

// Observe records the validation loss of one epoch and reports whether
// training should stop.
//
// The stop decision compares against the best loss of previous epochs;
// the best is updated afterwards. A NaN best is replaced by the next loss.
func (e *EarlyStopping) Observe(loss tensor.Scalar) bool {
	stop := ShouldStop(e.best, e.hasBest, loss, e.Patience, &e.noImprove)

	if !e.hasBest || math.IsNaN(e.best) || loss < e.best {
		e.best = loss
	}
	e.hasBest = true
	return stop
}

// Best returns the best loss observed so far. The second result is false
// before the first observation.
func (e *EarlyStopping) Best() (tensor.Scalar, bool) {
	return e.best, e.hasBest
}

// NoImprove returns the number of consecutive epochs without improvement.
func (e *EarlyStopping) NoImprove() int {
	return e.noImprove
}

// Reset clears all state.
func (e *EarlyStopping) Reset() {
	e.best, e.hasBest, e.noImprove = 0, false, 0
}
