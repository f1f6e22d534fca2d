// Copyright 2025 GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for networks built on the scalar
// autodiff engine.
//
// Example:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	opt.ZeroGrad()
//	loss := forward()
//	if err := autodiff.Backward(loss); err != nil {
//	    return err
//	}
//	opt.Step()
package optim

import (
	"github.com/gradkit-ml/gradkit/internal/nn"
	"github.com/gradkit-ml/gradkit/internal/optim"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
