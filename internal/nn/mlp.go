package nn

import (
	"fmt"

	"github.com/gradkit-ml/gradkit/internal/graph"
)

// MLP is a multi-layer perceptron: a chain of fully-connected tanh layers.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}) // 3 → 4 → 4 → 1
//	out := model.Forward(inputs)          // len(out) == 1
type MLP struct {
	layers []*Layer
}

// NewMLP creates a perceptron with nin inputs and one layer per entry of
// nouts, each entry giving that layer's width.
//
// Every layer is tanh-activated. Compose Layers directly when a linear
// output layer is needed.
func NewMLP(nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(fmt.Sprintf("layer%d", i), sizes[i], sizes[i+1], true)
	}
	return &MLP{layers: layers}
}

// Forward runs the inputs through every layer in sequence.
func (m *MLP) Forward(inputs []*graph.Node) []*graph.Node {
	outputs := inputs
	for _, layer := range m.layers {
		outputs = layer.Forward(outputs)
	}
	return outputs
}

// Parameters returns the parameters of all layers.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
