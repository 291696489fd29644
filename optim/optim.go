// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/synapse-ml/synapse/internal/optim"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config selects and configures an optimizer.
type Config = optim.Config

// Kind names an optimizer variant.
type Kind = optim.Kind

// Optimizer kinds.
const (
	KindSGD      = optim.KindSGD
	KindMomentum = optim.KindMomentum
	KindAdam     = optim.KindAdam
)

// SGD is plain gradient descent.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// Momentum is gradient descent with a velocity accumulator.
type Momentum = optim.Momentum

// MomentumConfig contains configuration for Momentum.
type MomentumConfig = optim.MomentumConfig

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam.
type AdamConfig = optim.AdamConfig

// New builds the optimizer described by cfg for numParams parameters.
func New(cfg Config, numParams int) (Optimizer, error) { return optim.New(cfg, numParams) }

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD { return optim.NewSGD(config) }

// NewMomentum creates a new Momentum optimizer for numParams parameters.
func NewMomentum(numParams int, config MomentumConfig) *Momentum {
	return optim.NewMomentum(numParams, config)
}

// NewAdam creates a new Adam optimizer for numParams parameters.
func NewAdam(numParams int, config AdamConfig) *Adam { return optim.NewAdam(numParams, config) }

// NumericGrad approximates the gradient of f at params by central
// differences.
func NumericGrad(f func(*tensor.Vector) tensor.Scalar, params *tensor.Vector, eps tensor.Scalar) *tensor.Vector {
	return optim.NumericGrad(f, params, eps)
}
