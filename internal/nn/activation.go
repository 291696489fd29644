package nn

import "github.com/synapse-ml/synapse/internal/tensor"

// Activation is a scalar non-linearity together with its derivative.
type Activation interface {
	// Forward applies the activation to x.
	Forward(x tensor.Scalar) tensor.Scalar

	// Backward returns the derivative of the activation at x.
	Backward(x tensor.Scalar) tensor.Scalar
}

// ReLU applies f(x) = max(0, x).
type ReLU struct{}

// Forward implements Activation.
func (ReLU) Forward(x tensor.Scalar) tensor.Scalar {
	if x > 0 {
		return x
	}
	return 0
}

// Backward implements Activation. The derivative at 0 is taken as 0.
func (ReLU) Backward(x tensor.Scalar) tensor.Scalar {
	if x > 0 {
		return 1
	}
	return 0
}

// Sigmoid applies f(x) = 1 / (1 + e^-x).
//
// Large |x| saturates to exactly 0 or 1; that is ordinary floating-point
// behavior, not an error.
type Sigmoid struct{}

// Forward implements Activation.
func (Sigmoid) Forward(x tensor.Scalar) tensor.Scalar {
	return 1 / (1 + tensor.Exp(-x))
}

// Backward implements Activation: σ(x) * (1 - σ(x)).
func (s Sigmoid) Backward(x tensor.Scalar) tensor.Scalar {
	y := s.Forward(x)
	return y * (1 - y)
}

// Tanh applies the hyperbolic tangent.
type Tanh struct{}

// Forward implements Activation.
func (Tanh) Forward(x tensor.Scalar) tensor.Scalar {
	return tensor.Tanh(x)
}

// Backward implements Activation: 1 - tanh²(x).
func (Tanh) Backward(x tensor.Scalar) tensor.Scalar {
	y := tensor.Tanh(x)
	return 1 - y*y
}
