package nn

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/tensor"
)

// Loss maps a (prediction, target) pair to a scalar loss and to the
// gradient of that loss with respect to the prediction.
//
// Implementations are stateless. Both methods fail with
// tensor.ErrVectorDimensionMismatch when the lengths differ or are zero.
type Loss interface {
	// Loss returns the scalar loss.
	Loss(pred, target *tensor.Vector) (tensor.Scalar, error)

	// Grad returns dLoss/dPred, one entry per prediction.
	Grad(pred, target *tensor.Vector) (*tensor.Vector, error)

	// Name returns a short identifier used in logs.
	Name() string
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
// Grad = (2/n) * (predictions - targets)
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
//
// Example:
//
//	var mse nn.MSELoss
//	loss, err := mse.Loss(predictions, targets)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() MSELoss {
	return MSELoss{}
}

// Name implements Loss.
func (MSELoss) Name() string { return "mse" }

// Loss computes the mean of squared residuals.
func (MSELoss) Loss(pred, target *tensor.Vector) (tensor.Scalar, error) {
	if err := checkPair("MSELoss.Loss", pred, target); err != nil {
		return 0, err
	}

	t := target.Data()
	var sum tensor.Scalar
	for i, p := range pred.Data() {
		d := p - t[i]
		sum += d * d
	}
	return sum / tensor.Scalar(pred.Len()), nil
}

// Grad computes (2/n) * (pred - target).
func (MSELoss) Grad(pred, target *tensor.Vector) (*tensor.Vector, error) {
	if err := checkPair("MSELoss.Grad", pred, target); err != nil {
		return nil, err
	}

	factor := 2.0 / tensor.Scalar(pred.Len())
	t := target.Data()
	grad := tensor.NewVector(pred.Len())
	g := grad.Data()
	for i, p := range pred.Data() {
		g[i] = factor * (p - t[i])
	}
	return grad, nil
}

// checkPair validates that pred and target are non-empty and equally long.
func checkPair(op string, pred, target *tensor.Vector) error {
	if pred.Len() != target.Len() || pred.Len() == 0 {
		return &tensor.ShapeError{
			Op:    op,
			Left:  pred.Shape(),
			Right: target.Shape(),
			Err:   tensor.ErrVectorDimensionMismatch,
		}
	}
	return nil
}

// ForKind returns the loss registered under name ("mse" or
// "cross_entropy").
func ForKind(name string) (Loss, error) {
	switch name {
	case "", "mse":
		return MSELoss{}, nil
	case "cross_entropy", "ce":
		return CrossEntropyLoss{}, nil
	default:
		return nil, fmt.Errorf("nn: unknown loss %q", name)
	}
}
