package nn

import "github.com/gradkit-ml/gradkit/internal/graph"

// Parameter represents a trainable parameter: a named leaf node whose value
// an optimizer updates and whose gradient a backward pass fills in.
//
// Example:
//
//	w := nn.NewParameter("layer0.n1.w2", 0.3)
//	// ... forward + backward ...
//	g := w.Grad()
type Parameter struct {
	name string
	node *graph.Node
}

// NewParameter creates a trainable parameter with the given initial value.
//
// The name is diagnostic (e.g. "layer1.n0.bias") and does not affect
// training.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{
		name: name,
		node: graph.Leaf(value),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the underlying leaf node, for use in forward computations.
func (p *Parameter) Node() *graph.Node {
	return p.node
}

// Value returns the parameter's current value.
func (p *Parameter) Value() float64 {
	return p.node.Value()
}

// Grad returns the gradient accumulated by the last backward pass.
func (p *Parameter) Grad() float64 {
	return p.node.Grad()
}

// ZeroGrad resets the gradient accumulator to 0.0.
//
// Must be called before each training iteration so gradients from previous
// iterations do not leak into the next backward pass.
func (p *Parameter) ZeroGrad() {
	p.node.ZeroGrad()
}
