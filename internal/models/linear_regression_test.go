package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/optim"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/solver"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// planeInput returns the five exact points of y = 2*x1 + 3*x2 + 1 as both
// the training and the test set.
func planeInput(t *testing.T, epochs, batchSize int, lr tensor.Scalar, opt optim.Config) *ffi.TrainingInput {
	t.Helper()
	x, err := tensor.MatrixFromSlice(5, 2, []tensor.Scalar{
		0, 1,
		1, 0,
		1, 1,
		2, 1,
		1, 2,
	})
	require.NoError(t, err)
	y := tensor.FromSlice([]tensor.Scalar{4, 3, 6, 8, 9})

	return &ffi.TrainingInput{
		Epochs:       epochs,
		BatchSize:    batchSize,
		EarlyStop:    epochs,
		LearningRate: lr,
		ModelType:    KindLinearRegression,
		Optimizer:    opt,
		Seed:         42,
		TrainX:       x,
		TrainY:       y,
		TestX:        x.Clone(),
		TestY:        y.Clone(),
	}
}

func assertFitsPlane(t *testing.T, m *LinearRegression, in *ffi.TrainingInput) {
	t.Helper()
	w := m.Weights().Data()
	assert.InDelta(t, 2.0, w[0], 0.05)
	assert.InDelta(t, 3.0, w[1], 0.05)
	assert.InDelta(t, 1.0, m.Bias(), 0.2)

	mse, err := m.Test(in)
	require.NoError(t, err)
	assert.Less(t, mse, 1e-2)
}

func TestLinearRegressionConvergesThroughSolver(t *testing.T) {
	in := planeInput(t, 1000, 1, 1e-2, optim.Config{})

	s, err := solver.New(Init, in, solver.Config{})
	require.NoError(t, err)
	history, err := s.Train()
	require.NoError(t, err)

	assert.Len(t, history.Epochs, 1000)
	assert.Equal(t, solver.Completed, s.State())

	m, ok := s.Model().(*LinearRegression)
	require.True(t, ok)
	assertFitsPlane(t, m, in)

	final, ok := history.FinalLoss()
	require.True(t, ok)
	assert.Less(t, final, 1e-2)
}

func TestLinearRegressionConvergesWithOptimizers(t *testing.T) {
	tests := []struct {
		name string
		lr   tensor.Scalar
		opt  optim.Config
	}{
		{"momentum", 0.01, optim.Config{Kind: optim.KindMomentum, Momentum: 0.9}},
		{"adam", 0.05, optim.DefaultConfig(optim.KindAdam)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := planeInput(t, 1000, 5, tt.lr, tt.opt)

			model, err := NewLinearRegression(in, random.New(7))
			require.NoError(t, err)
			assert.Equal(t, string(tt.opt.Kind), model.Optimizer().Name())

			require.NoError(t, model.Train(in))
			assertFitsPlane(t, model, in)
		})
	}
}

func TestLinearRegressionMatchesLeastSquares(t *testing.T) {
	in := planeInput(t, 1000, 1, 1e-2, optim.Config{})
	model, err := NewLinearRegression(in, random.New(3))
	require.NoError(t, err)
	require.NoError(t, model.Train(in))

	// Solve [X 1]·beta = y with gonum as an independent reference.
	rows := in.TrainX.Rows()
	a := mat.NewDense(rows, 3, nil)
	for i := 0; i < rows; i++ {
		x1, _ := in.TrainX.Get(i, 0)
		x2, _ := in.TrainX.Get(i, 1)
		a.Set(i, 0, x1)
		a.Set(i, 1, x2)
		a.Set(i, 2, 1)
	}
	b := mat.NewVecDense(rows, append([]float64(nil), in.TrainY.Data()...))

	var beta mat.VecDense
	require.NoError(t, beta.SolveVec(a, b))

	w := model.Weights().Data()
	assert.InDelta(t, beta.AtVec(0), w[0], 1e-3)
	assert.InDelta(t, beta.AtVec(1), w[1], 1e-3)
	assert.InDelta(t, beta.AtVec(2), model.Bias(), 1e-3)
}

func TestLinearRegressionPredict(t *testing.T) {
	m := NewLinearRegressionFrom(tensor.FromSlice([]tensor.Scalar{2, 3}), 1)
	x, err := tensor.MatrixFromSlice(2, 2, []tensor.Scalar{1, 1, 2, 0})
	require.NoError(t, err)

	preds, err := m.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, []tensor.Scalar{6, 5}, preds.Data())

	_, err = m.Predict(tensor.NewMatrix(2, 3))
	assert.ErrorIs(t, err, tensor.ErrMatDimensionMismatch)
}

func TestLinearRegressionUpdateMatchesNumericGradient(t *testing.T) {
	x, err := tensor.MatrixFromSlice(3, 2, []tensor.Scalar{
		0.5, -1,
		2, 0.25,
		-1.5, 3,
	})
	require.NoError(t, err)
	y := tensor.FromSlice([]tensor.Scalar{1, -2, 0.5})

	w0 := tensor.FromSlice([]tensor.Scalar{0.3, -0.7})
	b0 := tensor.Scalar(0.2)
	m := NewLinearRegressionFrom(w0, b0)

	// MSE of the packed parameters [w0, w1, b].
	objective := func(p *tensor.Vector) tensor.Scalar {
		candidate := NewLinearRegressionFrom(tensor.FromSlice(p.Data()[:2]), p.Data()[2])
		preds, err := candidate.Predict(x)
		require.NoError(t, err)
		loss, err := candidate.Loss().Loss(preds, y)
		require.NoError(t, err)
		return loss
	}
	numeric := optim.NumericGrad(objective, tensor.FromSlice([]tensor.Scalar{0.3, -0.7, 0.2}), 1e-6)

	preds, err := m.Predict(x)
	require.NoError(t, err)
	grad, err := m.Loss().Grad(preds, y)
	require.NoError(t, err)

	const lr = 0.1
	require.NoError(t, m.Update(x, grad, lr))

	// Update averages the already-averaged loss gradient over the batch.
	batch := tensor.Scalar(x.Rows())
	w := m.Weights().Data()
	assert.InDelta(t, 0.3-lr*numeric.Data()[0]/batch, w[0], 1e-5)
	assert.InDelta(t, -0.7-lr*numeric.Data()[1]/batch, w[1], 1e-5)
	assert.InDelta(t, 0.2-lr*numeric.Data()[2]/batch, m.Bias(), 1e-5)
}

func TestLinearRegressionUpdateErrors(t *testing.T) {
	m := NewLinearRegressionFrom(tensor.FromSlice([]tensor.Scalar{1, 1}), 0)

	err := m.Update(tensor.NewMatrix(3, 2), tensor.Zeros(2), 0.1)
	assert.ErrorIs(t, err, tensor.ErrMatDimensionMismatch)

	err = m.Update(tensor.NewMatrix(2, 3), tensor.Zeros(2), 0.1)
	assert.Error(t, err)

	err = m.Update(tensor.NewMatrix(0, 2), tensor.Zeros(0), 0.1)
	assert.ErrorIs(t, err, tensor.ErrInsufficientData)

	assert.Equal(t, []tensor.Scalar{1, 1}, m.Weights().Data(), "failed updates leave parameters unchanged")
	assert.Equal(t, 0.0, m.Bias())
}

func TestInit(t *testing.T) {
	in := planeInput(t, 1, 1, 0.01, optim.Config{})

	for _, kind := range []Kind{KindLinearRegression, KindMultiLinearRegression} {
		in.ModelType = kind
		m, err := Init(in, random.New(1))
		require.NoError(t, err)
		lr, ok := m.(*LinearRegression)
		require.True(t, ok)
		assert.Equal(t, 2, lr.Weights().Len())
		for _, w := range lr.Weights().Data() {
			assert.InDelta(t, 0, w, 10*InitStd)
		}
	}

	in.ModelType = ffi.ModelType(9)
	_, err := Init(in, random.New(1))
	assert.Error(t, err)

	in.ModelType = KindLinearRegression
	in.Optimizer = optim.Config{Kind: "rmsprop"}
	_, err = Init(in, random.New(1))
	assert.Error(t, err)
}

func TestTestDoesNotChangeModel(t *testing.T) {
	in := planeInput(t, 1, 1, 0.01, optim.Config{})
	m := NewLinearRegressionFrom(tensor.FromSlice([]tensor.Scalar{2, 3}), 1)

	loss, err := m.Test(in)
	require.NoError(t, err)
	assert.InDelta(t, 0, loss, 1e-12)
	assert.Equal(t, []tensor.Scalar{2, 3}, m.Weights().Data())
}
