// Package ops defines the backward rules for the differentiable primitive
// catalog.
//
// Each primitive is a struct implementing graph.Operation, created by an
// operator builder during the forward pass and attached to the node it
// produced. A rule carries only its operand references and any scalar
// intermediate it needs (the power exponent, the forward tanh result), so
// the recorded graph stays inspectable: no opaque captured closures.
//
// Supported primitives:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - PowOp: real power with a fixed scalar exponent (d(a^p)/da = p*a^(p-1))
//   - TanhOp: hyperbolic tangent (d(tanh(a))/da = 1 - tanh²(a))
//   - ExpOp: exponential (d(exp(a))/da = exp(a))
//
// Negation, subtraction, and division are compositions of the above and
// need no rules of their own.
package ops

import "github.com/gradkit-ml/gradkit/internal/graph"

// Compile-time checks that every primitive satisfies graph.Operation.
var (
	_ graph.Operation = (*AddOp)(nil)
	_ graph.Operation = (*MulOp)(nil)
	_ graph.Operation = (*PowOp)(nil)
	_ graph.Operation = (*TanhOp)(nil)
	_ graph.Operation = (*ExpOp)(nil)
)
