package ops

import "github.com/gradkit-ml/gradkit/internal/graph"

// TanhOp represents the hyperbolic tangent: output = tanh(a).
//
// The forward result t is captured at creation time because the local
// derivative is expressed in terms of the output, not the input.
//
// Backward pass:
//   - d(tanh(a))/da = 1 - tanh²(a) = 1 - t², so grad_a = outputGrad * (1 - t²)
type TanhOp struct {
	input *graph.Node // a
	out   float64     // tanh(a), the forward result
}

// NewTanhOp creates a new TanhOp with the precomputed forward result.
func NewTanhOp(a *graph.Node, out float64) *TanhOp {
	return &TanhOp{
		input: a,
		out:   out,
	}
}

// Backward computes the operand gradient contribution for tanh.
func (op *TanhOp) Backward(outputGrad float64) []float64 {
	return []float64{(1 - op.out*op.out) * outputGrad}
}

// Inputs returns the operand node [a].
func (op *TanhOp) Inputs() []*graph.Node {
	return []*graph.Node{op.input}
}
