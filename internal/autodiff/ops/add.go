package ops

import "github.com/gradkit-ml/gradkit/internal/graph"

// AddOp represents a scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	inputs []*graph.Node // [a, b]
}

// NewAddOp creates a new AddOp over operands a and b.
func NewAddOp(a, b *graph.Node) *AddOp {
	return &AddOp{
		inputs: []*graph.Node{a, b},
	}
}

// Backward computes operand gradient contributions for addition.
// The output gradient flows unchanged to both operands.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}

// Inputs returns the operand nodes [a, b].
func (op *AddOp) Inputs() []*graph.Node {
	return op.inputs
}
