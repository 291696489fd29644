// Package random provides the pseudo-random source used for parameter
// initialization and mini-batch shuffling.
//
// A Source is passed explicitly to every consumer; nothing in the engine
// reads ambient global randomness. Two Sources created with the same seed
// produce identical streams.
package random

import (
	"math/rand/v2"

	"github.com/synapse-ml/synapse/internal/tensor"
)

// Source draws uniformly- and normally-distributed Scalars, Vectors and
// Matrices.
type Source struct {
	rng *rand.Rand
}

// New creates a deterministic source from seed.
func New(seed uint64) *Source {
	//nolint:gosec // Statistical sampling, not security-critical.
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewEntropy creates a source seeded from the runtime's entropy pool.
func NewEntropy() *Source {
	//nolint:gosec // Statistical sampling, not security-critical.
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// FromSeed returns New(seed) for a non-zero seed and NewEntropy otherwise.
func FromSeed(seed uint64) *Source {
	if seed == 0 {
		return NewEntropy()
	}
	return New(seed)
}

// UniformScalar draws a Scalar uniformly from [low, high).
func (s *Source) UniformScalar(low, high tensor.Scalar) tensor.Scalar {
	return low + s.rng.Float64()*(high-low)
}

// NormalScalar draws a Scalar from N(mean, std²).
func (s *Source) NormalScalar(mean, std tensor.Scalar) tensor.Scalar {
	return mean + s.rng.NormFloat64()*std
}

// UniformVector creates a vector of length n with entries drawn from
// [low, high).
func (s *Source) UniformVector(n int, low, high tensor.Scalar) *tensor.Vector {
	v := tensor.NewVector(n)
	data := v.Data()
	for i := range data {
		data[i] = s.UniformScalar(low, high)
	}
	return v
}

// NormalVector creates a vector of length n with entries drawn from
// N(mean, std²).
func (s *Source) NormalVector(n int, mean, std tensor.Scalar) *tensor.Vector {
	v := tensor.NewVector(n)
	data := v.Data()
	for i := range data {
		data[i] = s.NormalScalar(mean, std)
	}
	return v
}

// UniformMatrix creates a rows x cols matrix with entries drawn from
// [low, high).
func (s *Source) UniformMatrix(rows, cols int, low, high tensor.Scalar) *tensor.Matrix {
	m := tensor.NewMatrix(rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = s.UniformScalar(low, high)
	}
	return m
}

// NormalMatrix creates a rows x cols matrix with entries drawn from
// N(mean, std²).
func (s *Source) NormalMatrix(rows, cols int, mean, std tensor.Scalar) *tensor.Matrix {
	m := tensor.NewMatrix(rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = s.NormalScalar(mean, std)
	}
	return m
}

// Perm returns a uniformly random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Shuffle permutes idx in place.
func (s *Source) Shuffle(idx []int) {
	s.rng.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
}
