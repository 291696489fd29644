package nn

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/tensor"
)

// CrossEntropyLoss computes cross-entropy between probabilities and targets.
//
// Mathematical Formulation:
//
//	Loss = -(1/n) * sum(target_i * ln(pred_i))
//	Grad = -(1/n) * (target_i / pred_i)
//
// Predictions must already be probabilities. Every prediction must be
// strictly positive; the first entry <= 0 fails the call with
// tensor.ErrInsufficientData.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss function.
func NewCrossEntropyLoss() CrossEntropyLoss {
	return CrossEntropyLoss{}
}

// Name implements Loss.
func (CrossEntropyLoss) Name() string { return "cross_entropy" }

// Loss computes -mean(target * ln(pred)).
func (CrossEntropyLoss) Loss(pred, target *tensor.Vector) (tensor.Scalar, error) {
	if err := checkPair("CrossEntropyLoss.Loss", pred, target); err != nil {
		return 0, err
	}

	t := target.Data()
	var sum tensor.Scalar
	for i, p := range pred.Data() {
		if p <= 0 {
			return 0, nonPositive("CrossEntropyLoss.Loss", i, p)
		}
		sum += t[i] * tensor.Ln(p)
	}
	return -sum / tensor.Scalar(pred.Len()), nil
}

// Grad computes -(1/n) * (target / pred).
func (CrossEntropyLoss) Grad(pred, target *tensor.Vector) (*tensor.Vector, error) {
	if err := checkPair("CrossEntropyLoss.Grad", pred, target); err != nil {
		return nil, err
	}

	invN := 1.0 / tensor.Scalar(pred.Len())
	t := target.Data()
	grad := tensor.NewVector(pred.Len())
	g := grad.Data()
	for i, p := range pred.Data() {
		if p <= 0 {
			return nil, nonPositive("CrossEntropyLoss.Grad", i, p)
		}
		g[i] = -invN * (t[i] / p)
	}
	return grad, nil
}

func nonPositive(op string, idx int, p tensor.Scalar) error {
	return fmt.Errorf("%s: prediction[%d] = %g must be > 0: %w", op, idx, p, tensor.ErrInsufficientData)
}
