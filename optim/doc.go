// Copyright 2025 Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that step a flat parameter vector from
// its gradient.
//
// Available optimizers:
//   - SGD: param -= lr * grad
//   - Momentum: velocity = m*velocity + lr*grad; param -= velocity
//   - Adam: bias-corrected first and second moment estimates
//
// Example:
//
//	opt, err := optim.New(optim.Config{Kind: optim.KindAdam, LR: 0.05}, params.Len())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = opt.Update(params, grad)
package optim
