package ops

import (
	"math"

	"github.com/gradkit-ml/gradkit/internal/graph"
)

// PowOp represents a power with a fixed real exponent: output = a^p.
//
// The exponent is a plain scalar captured at creation time, never a graph
// node; no product/quotient-of-two-variables power rule exists in this
// catalog.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1), so grad_a = outputGrad * p * a^(p-1)
type PowOp struct {
	input    *graph.Node // a
	exponent float64     // p
}

// NewPowOp creates a new PowOp raising a to the exponent p.
func NewPowOp(a *graph.Node, exponent float64) *PowOp {
	return &PowOp{
		input:    a,
		exponent: exponent,
	}
}

// Backward computes the operand gradient contribution for the power rule.
func (op *PowOp) Backward(outputGrad float64) []float64 {
	a := op.input.Value()
	return []float64{op.exponent * math.Pow(a, op.exponent-1) * outputGrad}
}

// Inputs returns the operand node [a].
func (op *PowOp) Inputs() []*graph.Node {
	return []*graph.Node{op.input}
}

// Exponent returns the fixed real exponent p. Diagnostics only.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}
