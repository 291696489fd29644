package dataset

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// Split is a train/test partition of a feature matrix and its targets.
type Split struct {
	TrainX *tensor.Matrix
	TrainY *tensor.Vector
	TestX  *tensor.Matrix
	TestY  *tensor.Vector
}

// TrainTestSplit shuffles the rows with src and holds out
// round(testRatio*rows) of them for testing.
//
// A ratio of 0 uses every row for both sets. Both sets are otherwise
// non-empty; the result owns fresh copies of the selected rows.
func TrainTestSplit(x *tensor.Matrix, y *tensor.Vector, testRatio float64, src *random.Source) (*Split, error) {
	if x.Rows() != y.Len() {
		return nil, &tensor.ShapeError{Op: "dataset.TrainTestSplit", Left: x.Shape(), Right: y.Shape(), Err: tensor.ErrMatDimensionMismatch}
	}
	if testRatio < 0 || testRatio >= 1 {
		return nil, fmt.Errorf("dataset: test ratio must be in [0, 1) (got %g)", testRatio)
	}

	rows := x.Rows()
	if testRatio == 0 {
		return &Split{TrainX: x.Clone(), TrainY: y.Clone(), TestX: x.Clone(), TestY: y.Clone()}, nil
	}

	nTest := int(testRatio*float64(rows) + 0.5)
	if nTest < 1 || nTest >= rows {
		return nil, fmt.Errorf("dataset: cannot hold out %d of %d rows: %w", nTest, rows, tensor.ErrInsufficientData)
	}

	idx := src.Perm(rows)
	test, train := idx[:nTest], idx[nTest:]

	s := &Split{}
	var err error
	if s.TrainX, err = x.SelectRows(train); err != nil {
		return nil, err
	}
	if s.TestX, err = x.SelectRows(test); err != nil {
		return nil, err
	}
	s.TrainY = selectEntries(y, train)
	s.TestY = selectEntries(y, test)
	return s, nil
}

func selectEntries(v *tensor.Vector, idx []int) *tensor.Vector {
	out := tensor.NewVector(len(idx))
	data := v.Data()
	for k, i := range idx {
		out.Data()[k] = data[i]
	}
	return out
}

// RawInput packs the split into the plain-data record the engine
// boundary accepts. Hyperparameters are left for the caller to fill in.
func (s *Split) RawInput() *ffi.RawInput {
	return &ffi.RawInput{
		TrainRows:     uint32(s.TrainX.Rows()),
		TrainCols:     uint32(s.TrainX.Cols()),
		TrainFeatures: append([]float64(nil), s.TrainX.Data()...),
		TrainTarget:   append([]float64(nil), s.TrainY.Data()...),
		TestRows:      uint32(s.TestX.Rows()),
		TestCols:      uint32(s.TestX.Cols()),
		TestFeatures:  append([]float64(nil), s.TestX.Data()...),
		TestTarget:    append([]float64(nil), s.TestY.Data()...),
	}
}
