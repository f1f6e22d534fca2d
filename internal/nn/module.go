// Package nn implements neural network modules on top of the scalar
// autodiff engine.
//
// This package provides building blocks for constructing small
// fully-connected networks:
//   - Module interface: base interface for all NN components
//   - Parameter: named trainable leaf with gradient tracking
//   - Neuron: tanh(Σ wᵢ·xᵢ + b) over scalar nodes
//   - Layer: a set of neurons sharing an input
//   - MLP: multi-layer perceptron
//   - MSELoss: mean squared error
//
// Design inspired by PyTorch's nn.Module, scaled down to scalar nodes.
package nn

import "github.com/gradkit-ml/gradkit/internal/graph"

// Module is the base interface for all neural network components.
//
// Modules compose: a Layer forwards through its Neurons, an MLP through its
// Layers. Inputs and outputs are slices of scalar graph nodes, so a module's
// forward pass extends the caller's computation graph and gradients flow
// back through it on Backward.
type Module interface {
	// Forward computes the module's outputs from the given input nodes.
	//
	// The input length must match the module's input width. Returns one
	// node per output unit.
	Forward(inputs []*graph.Node) []*graph.Node

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Modules without trainable
	// parameters return an empty slice.
	Parameters() []*Parameter
}
