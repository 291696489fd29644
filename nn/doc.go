// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the loss functions and scalar activations used by
// the training engine.
//
// # Losses
//
//   - MSELoss: mean squared error, for regression
//   - CrossEntropyLoss: mean of -target*ln(pred), predictions must be > 0
//
// Both return the scalar loss and its gradient with respect to the
// predictions:
//
//	loss, _ := nn.NewMSELoss().Loss(pred, target)
//	grad, _ := nn.NewMSELoss().Grad(pred, target)
package nn
