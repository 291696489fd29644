package optim

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update a parameter vector in place from the gradient of the
// loss with respect to those parameters.
//
// All optimizers must implement:
//   - Update: Apply one gradient step to params
//   - GetLR/SetLR: Read and change the learning rate (for scheduling and
//     for models that receive the learning rate per call)
type Optimizer interface {
	// Update applies one step to params using grad.
	//
	// params, grad and every internal accumulator must share the same
	// length; otherwise Update fails with tensor.ErrVectorDimensionMismatch
	// and leaves params and the optimizer state untouched.
	Update(params, grad *tensor.Vector) error

	// GetLR returns the current learning rate.
	GetLR() tensor.Scalar

	// SetLR updates the learning rate.
	SetLR(lr tensor.Scalar)

	// Name returns a short identifier used in logs.
	Name() string
}

// Kind selects an optimizer variant.
type Kind string

// Supported optimizer kinds.
const (
	KindSGD      Kind = "sgd"
	KindMomentum Kind = "momentum"
	KindAdam     Kind = "adam"
)

// Config is the configuration shared by all optimizers.
//
// New uses every field as given, zeros included. Start from DefaultConfig
// for the usual values.
type Config struct {
	Kind     Kind
	LR       tensor.Scalar    // Learning rate
	Momentum tensor.Scalar    // Momentum factor (momentum only)
	Betas    [2]tensor.Scalar // Moment decay rates (adam only)
	Eps      tensor.Scalar    // Denominator term (adam only)
}

// DefaultConfig returns the usual hyperparameters for kind.
func DefaultConfig(kind Kind) Config {
	cfg := Config{
		Kind:     kind,
		LR:       0.01,
		Momentum: 0.9,
		Betas:    [2]tensor.Scalar{0.9, 0.999},
		Eps:      1e-8,
	}
	if kind == KindAdam {
		cfg.LR = 0.001
	}
	return cfg
}

// New builds the optimizer described by cfg for a parameter vector of
// length numParams. A momentum of 0 gives plain gradient steps.
func New(cfg Config, numParams int) (Optimizer, error) {
	switch cfg.Kind {
	case "", KindSGD:
		return &SGD{lr: cfg.LR}, nil
	case KindMomentum:
		return &Momentum{lr: cfg.LR, momentum: cfg.Momentum, velocity: tensor.Zeros(numParams)}, nil
	case KindAdam:
		return &Adam{
			lr:    cfg.LR,
			beta1: cfg.Betas[0],
			beta2: cfg.Betas[1],
			eps:   cfg.Eps,
			m:     tensor.Zeros(numParams),
			v:     tensor.Zeros(numParams),
		}, nil
	default:
		return nil, fmt.Errorf("optim: unknown optimizer kind %q", cfg.Kind)
	}
}

// checkLengths verifies that every vector shares params' length.
func checkLengths(op string, params *tensor.Vector, others ...*tensor.Vector) error {
	for _, o := range others {
		if o.Len() != params.Len() {
			return &tensor.ShapeError{
				Op:    op,
				Left:  params.Shape(),
				Right: o.Shape(),
				Err:   tensor.ErrVectorDimensionMismatch,
			}
		}
	}
	return nil
}
