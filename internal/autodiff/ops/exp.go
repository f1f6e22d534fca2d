package ops

import "github.com/gradkit-ml/gradkit/internal/graph"

// ExpOp represents the exponential: output = e^a.
//
// Backward pass:
//   - d(e^a)/da = e^a, which is the forward result itself, so
//     grad_a = outputGrad * output
type ExpOp struct {
	input *graph.Node // a
	out   float64     // e^a, the forward result
}

// NewExpOp creates a new ExpOp with the precomputed forward result.
func NewExpOp(a *graph.Node, out float64) *ExpOp {
	return &ExpOp{
		input: a,
		out:   out,
	}
}

// Backward computes the operand gradient contribution for exp.
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{op.out * outputGrad}
}

// Inputs returns the operand node [a].
func (op *ExpOp) Inputs() []*graph.Node {
	return []*graph.Node{op.input}
}
