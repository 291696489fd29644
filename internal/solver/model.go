package solver

import (
	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/nn"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// Model is the part of the model capability the training loop drives.
type Model interface {
	// Predict runs inference on every row of x.
	Predict(x *tensor.Matrix) (*tensor.Vector, error)

	// Update applies one parameter step given the loss gradient with
	// respect to the predictions for the rows of x.
	Update(x *tensor.Matrix, gradPred *tensor.Vector, lr tensor.Scalar) error

	// Loss returns the loss function the model is trained against.
	Loss() nn.Loss
}

// Initializer builds a freshly initialized model for in, drawing any
// randomness from src.
type Initializer func(in *ffi.TrainingInput, src *random.Source) (Model, error)
