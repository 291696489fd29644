package ffi

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/optim"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// ModelType is the model discriminant carried across the boundary.
type ModelType uint32

// Model discriminants. Both values select the linear regression variant;
// MultiLinearRegression is the same model generalized over feature count.
const (
	LinearRegression      ModelType = 0
	MultiLinearRegression ModelType = 1
)

// String implements fmt.Stringer.
func (t ModelType) String() string {
	switch t {
	case LinearRegression:
		return "linear_regression"
	case MultiLinearRegression:
		return "multi_linear_regression"
	default:
		return fmt.Sprintf("ModelType(%d)", uint32(t))
	}
}

// ParseModelType maps a configuration name onto a ModelType.
func ParseModelType(name string) (ModelType, error) {
	switch name {
	case "", "linear_regression", "linear":
		return LinearRegression, nil
	case "multi_linear_regression", "multi_linear":
		return MultiLinearRegression, nil
	default:
		return 0, fmt.Errorf("ffi: unknown model type %q", name)
	}
}

// RawInput is the plain-data record a host hands to the engine.
//
// Feature buffers are row-major and must hold at least Rows*Cols values;
// target buffers must hold at least Rows values. Extra trailing values are
// ignored.
type RawInput struct {
	Epochs       uint32
	BatchSize    uint32 // 0 selects the full training-set size
	EarlyStop    uint32 // Patience in epochs; 0 stops at the first epoch without improvement
	LearningRate float64
	ModelType    ModelType

	TrainRows     uint32
	TrainCols     uint32
	TrainFeatures []float64
	TrainTarget   []float64

	TestRows     uint32
	TestCols     uint32
	TestFeatures []float64
	TestTarget   []float64

	Optimizer optim.Config // Zero value selects plain gradient descent
	Seed      uint64       // 0 seeds from runtime entropy
}

// TrainingInput is the engine-owned snapshot of one training run.
//
// A TrainingInput is built once per run and owned exclusively by the solver
// driving that run. Use Clone to hand an independent copy to another run.
type TrainingInput struct {
	Epochs       int
	BatchSize    int
	EarlyStop    int
	LearningRate tensor.Scalar
	ModelType    ModelType
	Optimizer    optim.Config
	Seed         uint64

	TrainX *tensor.Matrix
	TrainY *tensor.Vector
	TestX  *tensor.Matrix
	TestY  *tensor.Vector
}

// ToInternal validates r and copies its buffers into a TrainingInput.
func (r *RawInput) ToInternal() (*TrainingInput, error) {
	if r.ModelType > MultiLinearRegression {
		return nil, fmt.Errorf("ffi: unknown model type %v", r.ModelType)
	}

	trainX, err := copyMatrix("train features", r.TrainRows, r.TrainCols, r.TrainFeatures)
	if err != nil {
		return nil, err
	}
	trainY, err := copyVector("train target", r.TrainRows, r.TrainTarget)
	if err != nil {
		return nil, err
	}
	testX, err := copyMatrix("test features", r.TestRows, r.TestCols, r.TestFeatures)
	if err != nil {
		return nil, err
	}
	testY, err := copyVector("test target", r.TestRows, r.TestTarget)
	if err != nil {
		return nil, err
	}

	batchSize := r.BatchSize
	if batchSize == 0 {
		batchSize = r.TrainRows
	}

	return &TrainingInput{
		Epochs:       int(r.Epochs),
		BatchSize:    int(batchSize),
		EarlyStop:    int(r.EarlyStop),
		LearningRate: r.LearningRate,
		ModelType:    r.ModelType,
		Optimizer:    r.Optimizer,
		Seed:         r.Seed,
		TrainX:       trainX,
		TrainY:       trainY,
		TestX:        testX,
		TestY:        testY,
	}, nil
}

func copyMatrix(name string, rows, cols uint32, buf []float64) (*tensor.Matrix, error) {
	n := int(rows) * int(cols)
	if len(buf) < n {
		return nil, fmt.Errorf("ffi: %s: buffer holds %d values, need %d: %w",
			name, len(buf), n, tensor.ErrInsufficientData)
	}
	return tensor.MatrixFromSlice(int(rows), int(cols), buf[:n])
}

func copyVector(name string, rows uint32, buf []float64) (*tensor.Vector, error) {
	n := int(rows)
	if len(buf) < n {
		return nil, fmt.Errorf("ffi: %s: buffer holds %d values, need %d: %w",
			name, len(buf), n, tensor.ErrInsufficientData)
	}
	return tensor.FromSlice(buf[:n]), nil
}

// Clone returns a deep copy of in. No container is shared with in.
func (in *TrainingInput) Clone() *TrainingInput {
	out := *in
	out.TrainX = in.TrainX.Clone()
	out.TrainY = in.TrainY.Clone()
	out.TestX = in.TestX.Clone()
	out.TestY = in.TestY.Clone()
	return &out
}

// NumFeatures returns the number of feature columns.
func (in *TrainingInput) NumFeatures() int {
	return in.TrainX.Cols()
}

// Validate checks the shape relationships between the four data tensors
// and the hyperparameters the solver depends on.
func (in *TrainingInput) Validate() error {
	if in.TrainX == nil || in.TrainY == nil || in.TestX == nil || in.TestY == nil {
		return fmt.Errorf("ffi: training input is missing data: %w", tensor.ErrInsufficientData)
	}
	if in.TrainX.Rows() != in.TrainY.Len() {
		return &tensor.ShapeError{Op: "TrainingInput.Validate", Left: in.TrainX.Shape(), Right: in.TrainY.Shape(), Err: tensor.ErrMatDimensionMismatch}
	}
	if in.TestX.Rows() != in.TestY.Len() {
		return &tensor.ShapeError{Op: "TrainingInput.Validate", Left: in.TestX.Shape(), Right: in.TestY.Shape(), Err: tensor.ErrMatDimensionMismatch}
	}
	if in.TestX.Cols() != in.TrainX.Cols() {
		return &tensor.ShapeError{Op: "TrainingInput.Validate", Left: in.TrainX.Shape(), Right: in.TestX.Shape(), Err: tensor.ErrMatDimensionMismatch}
	}
	if in.BatchSize <= 0 {
		return fmt.Errorf("ffi: batch size must be > 0 (got %d)", in.BatchSize)
	}
	if in.Epochs < 0 || in.EarlyStop < 0 {
		return fmt.Errorf("ffi: epochs and early stop must be >= 0 (got %d, %d)", in.Epochs, in.EarlyStop)
	}
	return nil
}
