// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/models"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/solver"
)

// Solver owns a model and its training input for one run.
type Solver = solver.Solver

// Config controls logging and randomness of a run.
type Config = solver.Config

// Model is the part of a model the training loop drives.
type Model = solver.Model

// Initializer builds a fresh model for a training input.
type Initializer = solver.Initializer

// History is the report of one training run.
type History = solver.History

// EpochRecord describes one finished epoch.
type EpochRecord = solver.EpochRecord

// State is the position of a Solver in its lifecycle.
type State = solver.State

// Solver states.
const (
	NotStarted   = solver.NotStarted
	EpochRunning = solver.EpochRunning
	StoppedEarly = solver.StoppedEarly
	Completed    = solver.Completed
)

// EarlyStopping tracks the best validation loss and the epochs since it
// improved.
type EarlyStopping = solver.EarlyStopping

// RawInput is the plain-data record a host hands to the engine.
type RawInput = ffi.RawInput

// TrainingInput is the engine-owned snapshot of one run.
type TrainingInput = ffi.TrainingInput

// ModelType is the model discriminant carried on RawInput.
type ModelType = ffi.ModelType

// Model discriminants.
const (
	LinearRegression      = ffi.LinearRegression
	MultiLinearRegression = ffi.MultiLinearRegression
)

// Source is a seedable random source.
type Source = random.Source

// NewSource returns a source seeded with seed.
func NewSource(seed uint64) *Source { return random.New(seed) }

// New validates in and initializes a model for it with init.
func New(init Initializer, in *TrainingInput, cfg Config) (*Solver, error) {
	return solver.New(init, in, cfg)
}

// ShouldStop reports whether training should halt after observing current.
func ShouldStop(best float64, hasBest bool, current float64, patience int, noImprove *int) bool {
	return solver.ShouldStop(best, hasBest, current, patience, noImprove)
}

// Result is the outcome of Run.
type Result struct {
	Model    *models.LinearRegression
	History  *History
	TestLoss float64
}

// Run copies raw into a TrainingInput, trains the model it names and
// evaluates it on the test set.
func Run(raw *RawInput, cfg Config) (*Result, error) {
	in, err := raw.ToInternal()
	if err != nil {
		return nil, err
	}

	s, err := solver.New(models.Init, in, cfg)
	if err != nil {
		return nil, err
	}
	history, err := s.Train()
	if err != nil {
		return nil, err
	}

	model, ok := s.Model().(*models.LinearRegression)
	if !ok {
		return nil, fmt.Errorf("solver: unexpected model %T", s.Model())
	}
	testLoss, err := s.Test()
	if err != nil {
		return nil, err
	}
	return &Result{Model: model, History: history, TestLoss: testLoss}, nil
}
