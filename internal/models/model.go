package models

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/solver"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// Kind is the model discriminant.
type Kind = ffi.ModelType

// Model kinds. Both select LinearRegression.
const (
	KindLinearRegression      = ffi.LinearRegression
	KindMultiLinearRegression = ffi.MultiLinearRegression
)

// Model is a trainable model.
//
// Train runs a full solver loop over the input and leaves the trained
// parameters in the receiver. Test returns the loss on the input's held-out
// set without changing the model.
type Model interface {
	solver.Model

	Train(in *ffi.TrainingInput) error
	Test(in *ffi.TrainingInput) (tensor.Scalar, error)
}

// Init builds a freshly initialized model for in.ModelType. It satisfies
// solver.Initializer.
func Init(in *ffi.TrainingInput, src *random.Source) (solver.Model, error) {
	switch in.ModelType {
	case KindLinearRegression, KindMultiLinearRegression:
		m, err := NewLinearRegression(in, src)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("models: unsupported model type %s", in.ModelType)
	}
}
