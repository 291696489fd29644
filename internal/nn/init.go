package nn

import (
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// Normal draws a length-n parameter vector from N(0, std²).
func Normal(src *random.Source, n int, std tensor.Scalar) *tensor.Vector {
	return src.NormalVector(n, 0, std)
}

// Zeros creates a zero-filled parameter vector of length n.
func Zeros(n int) *tensor.Vector {
	return tensor.Zeros(n)
}
