// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package models provides trainable models.
package models

import (
	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/models"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/solver"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// Model is a trainable model.
type Model = models.Model

// LinearRegression predicts x·w + b.
type LinearRegression = models.LinearRegression

// Kind is the model discriminant.
type Kind = models.Kind

// Model kinds.
const (
	KindLinearRegression      = models.KindLinearRegression
	KindMultiLinearRegression = models.KindMultiLinearRegression
)

// InitStd is the standard deviation of freshly initialized parameters.
const InitStd = models.InitStd

// Init builds a freshly initialized model for in.ModelType.
func Init(in *ffi.TrainingInput, src *random.Source) (solver.Model, error) {
	return models.Init(in, src)
}

// NewLinearRegression initializes a linear regression model for in.
func NewLinearRegression(in *ffi.TrainingInput, src *random.Source) (*LinearRegression, error) {
	return models.NewLinearRegression(in, src)
}

// NewLinearRegressionFrom builds a model with the given parameters.
func NewLinearRegressionFrom(weights *tensor.Vector, bias tensor.Scalar) *LinearRegression {
	return models.NewLinearRegressionFrom(weights, bias)
}
