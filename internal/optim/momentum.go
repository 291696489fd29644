package optim

import "github.com/synapse-ml/synapse/internal/tensor"

// Momentum implements gradient descent with a velocity accumulator.
//
// Update rule:
//
//	velocity = momentum * velocity + lr * gradient
//	param = param - velocity
//
// Momentum helps accelerate descent in consistent directions and dampens
// oscillations.
type Momentum struct {
	lr       tensor.Scalar
	momentum tensor.Scalar
	velocity *tensor.Vector
}

// MomentumConfig holds configuration for Momentum optimizer.
type MomentumConfig struct {
	LR       tensor.Scalar // Learning rate (default: 0.01)
	Momentum tensor.Scalar // Momentum factor (default: 0.9, range: [0, 1))
}

// NewMomentum creates a Momentum optimizer for numParams parameters.
// The velocity starts at zero.
func NewMomentum(numParams int, config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum == 0 {
		config.Momentum = 0.9
	}
	return &Momentum{
		lr:       config.LR,
		momentum: config.Momentum,
		velocity: tensor.Zeros(numParams),
	}
}

// Update applies one momentum step.
func (m *Momentum) Update(params, grad *tensor.Vector) error {
	if err := checkLengths("Momentum.Update", params, grad, m.velocity); err != nil {
		return err
	}

	p := params.Data()
	v := m.velocity.Data()
	for i, g := range grad.Data() {
		v[i] = m.momentum*v[i] + m.lr*g
		p[i] -= v[i]
	}
	return nil
}

// Velocity returns a copy of the velocity accumulator.
func (m *Momentum) Velocity() *tensor.Vector {
	return m.velocity.Clone()
}

// GetLR returns the current learning rate.
func (m *Momentum) GetLR() tensor.Scalar { return m.lr }

// SetLR updates the learning rate.
func (m *Momentum) SetLR(lr tensor.Scalar) { m.lr = lr }

// Name implements Optimizer.
func (m *Momentum) Name() string { return string(KindMomentum) }
