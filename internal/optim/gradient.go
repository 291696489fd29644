package optim

import "github.com/synapse-ml/synapse/internal/tensor"

// NumericGrad approximates the gradient of f at params with central
// differences:
//
//	grad_i = (f(params + eps*e_i) - f(params - eps*e_i)) / (2*eps)
//
// params is not modified. NumericGrad is intended for verifying analytic
// gradients; it costs 2*len(params) evaluations of f.
func NumericGrad(f func(*tensor.Vector) tensor.Scalar, params *tensor.Vector, eps tensor.Scalar) *tensor.Vector {
	n := params.Len()
	grad := tensor.Zeros(n)
	g := grad.Data()

	for i := 0; i < n; i++ {
		plus := params.Clone()
		minus := params.Clone()
		plus.Data()[i] += eps
		minus.Data()[i] -= eps

		g[i] = (f(plus) - f(minus)) / (2 * eps)
	}
	return grad
}
