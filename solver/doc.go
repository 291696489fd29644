// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver runs training: mini-batching, validation and early
// stopping over a model.
//
// A host hands the engine a RawInput, a plain record of hyperparameters and
// row-major buffers. Run copies it into a TrainingInput, trains the model
// it names and reports the result:
//
//	result, err := solver.Run(&solver.RawInput{
//	    Epochs:        1000,
//	    BatchSize:     1,
//	    LearningRate:  0.01,
//	    TrainRows:     5,
//	    TrainCols:     2,
//	    TrainFeatures: features,
//	    TrainTarget:   targets,
//	    TestRows:      5,
//	    TestCols:      2,
//	    TestFeatures:  features,
//	    TestTarget:    targets,
//	}, solver.Config{})
package solver
