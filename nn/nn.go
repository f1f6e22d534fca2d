// Copyright 2025 GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network modules built on the scalar autodiff
// engine: parameters, neurons, layers, perceptrons, and losses.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
//	mse := nn.NewMSELoss()
//
//	out := model.Forward(inputs)
//	loss := mse.Forward(out, targets)
package nn

import "github.com/gradkit-ml/gradkit/internal/nn"

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter is a named trainable leaf node.
type Parameter = nn.Parameter

// Neuron computes tanh(Σ wᵢ·xᵢ + b).
type Neuron = nn.Neuron

// Layer is a set of neurons sharing an input.
type Layer = nn.Layer

// MLP is a multi-layer perceptron of tanh layers.
type MLP = nn.MLP

// MSELoss computes mean squared error.
type MSELoss = nn.MSELoss

// NewParameter creates a trainable parameter with the given initial value.
func NewParameter(name string, value float64) *Parameter {
	return nn.NewParameter(name, value)
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(name string, nin int, nonlinear bool) *Neuron {
	return nn.NewNeuron(name, nin, nonlinear)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, nonlinear bool) *Layer {
	return nn.NewLayer(name, nin, nout, nonlinear)
}

// NewMLP creates a perceptron with nin inputs and one tanh layer per entry
// of nouts.
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}

// NewMSELoss creates a mean-squared-error loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}
