package models

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/nn"
	"github.com/synapse-ml/synapse/internal/optim"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/solver"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// InitStd is the standard deviation of the initial weights and bias.
const InitStd = 0.01

// LinearRegression predicts x·w + b, trained against mean squared error.
//
// Parameters are stepped by an optim.Optimizer over the packed vector
// [w_0, ..., w_{n-1}, b]. With the default SGD optimizer this is plain
// gradient descent.
type LinearRegression struct {
	weights *tensor.Vector
	bias    tensor.Scalar
	loss    nn.MSELoss
	opt     optim.Optimizer
}

// NewLinearRegression initializes weights and bias from N(0, InitStd²) with
// one weight per feature of in, and builds the optimizer in.Optimizer
// describes.
func NewLinearRegression(in *ffi.TrainingInput, src *random.Source) (*LinearRegression, error) {
	n := in.NumFeatures()
	if n <= 0 {
		return nil, fmt.Errorf("models: linear regression needs at least one feature: %w", tensor.ErrInsufficientData)
	}

	cfg := in.Optimizer
	cfg.LR = in.LearningRate
	opt, err := optim.New(cfg, n+1)
	if err != nil {
		return nil, fmt.Errorf("models: %w", err)
	}

	return &LinearRegression{
		weights: nn.Normal(src, n, InitStd),
		bias:    src.NormalScalar(0, InitStd),
		loss:    nn.NewMSELoss(),
		opt:     opt,
	}, nil
}

// NewLinearRegressionFrom builds a model with the given parameters and a
// plain SGD optimizer. weights is copied.
func NewLinearRegressionFrom(weights *tensor.Vector, bias tensor.Scalar) *LinearRegression {
	return &LinearRegression{
		weights: weights.Clone(),
		bias:    bias,
		loss:    nn.NewMSELoss(),
		opt:     optim.NewSGD(optim.SGDConfig{}),
	}
}

// Weights returns a copy of the weight vector.
func (m *LinearRegression) Weights() *tensor.Vector { return m.weights.Clone() }

// Bias returns the bias term.
func (m *LinearRegression) Bias() tensor.Scalar { return m.bias }

// Optimizer returns the optimizer stepping the parameters.
func (m *LinearRegression) Optimizer() optim.Optimizer { return m.opt }

// Loss implements solver.Model.
func (m *LinearRegression) Loss() nn.Loss { return m.loss }

// Predict returns x·w + b for every row of x.
func (m *LinearRegression) Predict(x *tensor.Matrix) (*tensor.Vector, error) {
	out, err := x.MulVec(m.weights)
	if err != nil {
		return nil, err
	}
	data := out.Data()
	for i := range data {
		data[i] += m.bias
	}
	return out, nil
}

// Update applies one optimizer step.
//
// The weight gradient is xᵀ·gradPred and the bias gradient is the sum of
// gradPred, both divided by the number of rows in x. On error the
// parameters are unchanged.
func (m *LinearRegression) Update(x *tensor.Matrix, gradPred *tensor.Vector, lr tensor.Scalar) error {
	if x.Rows() != gradPred.Len() {
		return &tensor.ShapeError{Op: "LinearRegression.Update", Left: x.Shape(), Right: gradPred.Shape(), Err: tensor.ErrMatDimensionMismatch}
	}
	if x.Rows() == 0 {
		return fmt.Errorf("models: empty batch: %w", tensor.ErrInsufficientData)
	}

	gradW, err := x.Transpose().MulVec(gradPred)
	if err != nil {
		return err
	}
	batch := tensor.Scalar(x.Rows())

	n := m.weights.Len()
	if gradW.Len() != n {
		return &tensor.ShapeError{Op: "LinearRegression.Update", Left: m.weights.Shape(), Right: gradW.Shape(), Err: tensor.ErrVectorDimensionMismatch}
	}

	params := tensor.NewVector(n + 1)
	grad := tensor.NewVector(n + 1)
	copy(params.Data(), m.weights.Data())
	params.Data()[n] = m.bias
	for i, g := range gradW.Data() {
		grad.Data()[i] = g / batch
	}
	grad.Data()[n] = gradPred.Sum() / batch

	m.opt.SetLR(lr)
	if err := m.opt.Update(params, grad); err != nil {
		return err
	}

	copy(m.weights.Data(), params.Data()[:n])
	m.bias = params.Data()[n]
	return nil
}

// Train trains the receiver on in with a fresh solver, starting from the
// current parameters.
func (m *LinearRegression) Train(in *ffi.TrainingInput) error {
	_, err := m.TrainWith(in, solver.Config{})
	return err
}

// TrainWith is Train with explicit solver configuration. It returns the
// run history.
func (m *LinearRegression) TrainWith(in *ffi.TrainingInput, cfg solver.Config) (*solver.History, error) {
	self := func(*ffi.TrainingInput, *random.Source) (solver.Model, error) { return m, nil }
	s, err := solver.New(self, in, cfg)
	if err != nil {
		return nil, err
	}
	return s.Train()
}

// Test returns the mean squared error on the held-out set of in.
func (m *LinearRegression) Test(in *ffi.TrainingInput) (tensor.Scalar, error) {
	preds, err := m.Predict(in.TestX)
	if err != nil {
		return 0, err
	}
	return m.loss.Loss(preds, in.TestY)
}

var _ Model = (*LinearRegression)(nil)
