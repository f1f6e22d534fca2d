package nn

import (
	"fmt"

	"github.com/gradkit-ml/gradkit/internal/autodiff"
	"github.com/gradkit-ml/gradkit/internal/graph"
)

// Neuron computes tanh(Σ wᵢ·xᵢ + b) over scalar nodes.
//
// Weights are initialized uniformly from [-1, 1); the bias starts at zero.
// With nonlinear disabled the neuron is a plain affine unit, useful as an
// output layer for regression.
type Neuron struct {
	weights   []*Parameter
	bias      *Parameter
	nonlinear bool
}

// NewNeuron creates a neuron with nin inputs.
//
// The name prefixes the neuron's parameter names (e.g. "layer0.n2").
func NewNeuron(name string, nin int, nonlinear bool) *Neuron {
	weights := make([]*Parameter, nin)
	for i, w := range Uniform(nin) {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), w)
	}

	return &Neuron{
		weights:   weights,
		bias:      NewParameter(name+".bias", 0),
		nonlinear: nonlinear,
	}
}

// Forward computes the neuron's activation for the given inputs.
//
// Returns a single-element slice holding tanh(Σ wᵢ·xᵢ + b), or the raw
// affine value when the neuron is linear.
func (n *Neuron) Forward(inputs []*graph.Node) []*graph.Node {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias.Node()
	for i, w := range n.weights {
		act = autodiff.Add(act, autodiff.Mul(w.Node(), inputs[i]))
	}

	if n.nonlinear {
		act = autodiff.Tanh(act)
	}

	return []*graph.Node{act}
}

// Parameters returns the neuron's weights followed by its bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}
