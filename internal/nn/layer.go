package nn

import (
	"fmt"

	"github.com/gradkit-ml/gradkit/internal/graph"
)

// Layer is a fully-connected layer: nout neurons sharing nin inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// The name prefixes the layer's parameter names (e.g. "layer1").
func NewLayer(name string, nin, nout int, nonlinear bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.n%d", name, i), nin, nonlinear)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's activation for the given inputs.
//
// Returns one node per neuron.
func (l *Layer) Forward(inputs []*graph.Node) []*graph.Node {
	outputs := make([]*graph.Node, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)[0]
	}
	return outputs
}

// Parameters returns the parameters of all neurons in the layer.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
