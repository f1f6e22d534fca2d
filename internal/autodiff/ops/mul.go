package ops

import "github.com/gradkit-ml/gradkit/internal/graph"

// MulOp represents a scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	inputs []*graph.Node // [a, b]
}

// NewMulOp creates a new MulOp over operands a and b.
func NewMulOp(a, b *graph.Node) *MulOp {
	return &MulOp{
		inputs: []*graph.Node{a, b},
	}
}

// Backward computes operand gradient contributions for multiplication.
// Each operand receives the output gradient scaled by the other operand's
// forward value.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{
		b.Value() * outputGrad,
		a.Value() * outputGrad,
	}
}

// Inputs returns the operand nodes [a, b].
func (op *MulOp) Inputs() []*graph.Node {
	return op.inputs
}
