// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import "github.com/synapse-ml/synapse/internal/nn"

// Loss maps a prediction/target pair to a loss and its gradient.
type Loss = nn.Loss

// MSELoss computes mean squared error.
type MSELoss = nn.MSELoss

// CrossEntropyLoss computes mean cross-entropy.
type CrossEntropyLoss = nn.CrossEntropyLoss

// Activation is a scalar activation with its derivative.
type Activation = nn.Activation

// Scalar activations.
type (
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
	Tanh    = nn.Tanh
)

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() MSELoss { return nn.NewMSELoss() }

// NewCrossEntropyLoss creates a new cross-entropy loss function.
func NewCrossEntropyLoss() CrossEntropyLoss { return nn.NewCrossEntropyLoss() }

// ForKind returns the loss registered under name.
func ForKind(name string) (Loss, error) { return nn.ForKind(name) }
