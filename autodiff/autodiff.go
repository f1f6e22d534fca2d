// Copyright 2025 GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Operator builders construct a computation DAG as the forward expression
// evaluates; Backward walks it from a terminal node in reverse topological
// order and accumulates ∂(terminal)/∂(node) into every reachable node.
//
// Example:
//
//	a := graph.Leaf(2.0)
//	p := autodiff.MulScalar(a, 3)   // a * 3
//	q := autodiff.AddScalar(a, 1)   // a + 1
//	r := autodiff.Mul(p, q)
//
//	if err := autodiff.Backward(r); err != nil {
//	    return err
//	}
//	fmt.Println(a.Grad()) // 15.0: both paths contribute
package autodiff

import (
	"github.com/gradkit-ml/gradkit/internal/autodiff"
	"github.com/gradkit-ml/gradkit/internal/graph"
)

// Common errors.
var (
	// ErrUnsupportedExponent reports a Pow exponent that is not a plain
	// numeric scalar.
	ErrUnsupportedExponent = autodiff.ErrUnsupportedExponent

	// ErrCyclicGraph reports that Backward found a cycle in the operand
	// relation; no gradient is mutated in that case.
	ErrCyclicGraph = autodiff.ErrCyclicGraph
)

// Add returns a node holding a + b.
func Add(a, b *graph.Node) *graph.Node { return autodiff.Add(a, b) }

// Mul returns a node holding a * b.
func Mul(a, b *graph.Node) *graph.Node { return autodiff.Mul(a, b) }

// Pow returns a node holding a raised to the exponent, which must be a plain
// Go numeric scalar; anything else fails with ErrUnsupportedExponent.
func Pow(a *graph.Node, exponent any) (*graph.Node, error) {
	return autodiff.Pow(a, exponent)
}

// Neg returns a node holding -a.
func Neg(a *graph.Node) *graph.Node { return autodiff.Neg(a) }

// Sub returns a node holding a - b.
func Sub(a, b *graph.Node) *graph.Node { return autodiff.Sub(a, b) }

// Div returns a node holding a / b. Division by zero propagates IEEE-754
// non-finite values instead of failing.
func Div(a, b *graph.Node) *graph.Node { return autodiff.Div(a, b) }

// Tanh returns a node holding the hyperbolic tangent of a.
func Tanh(a *graph.Node) *graph.Node { return autodiff.Tanh(a) }

// Exp returns a node holding e^a.
func Exp(a *graph.Node) *graph.Node { return autodiff.Exp(a) }

// AddScalar returns a node holding a + s (scalar promoted to a constant).
func AddScalar(a *graph.Node, s float64) *graph.Node { return autodiff.AddScalar(a, s) }

// MulScalar returns a node holding a * s.
func MulScalar(a *graph.Node, s float64) *graph.Node { return autodiff.MulScalar(a, s) }

// SubScalar returns a node holding a - s.
func SubScalar(a *graph.Node, s float64) *graph.Node { return autodiff.SubScalar(a, s) }

// ScalarSub returns a node holding s - a.
func ScalarSub(s float64, a *graph.Node) *graph.Node { return autodiff.ScalarSub(s, a) }

// DivScalar returns a node holding a / s.
func DivScalar(a *graph.Node, s float64) *graph.Node { return autodiff.DivScalar(a, s) }

// ScalarDiv returns a node holding s / a.
func ScalarDiv(s float64, a *graph.Node) *graph.Node { return autodiff.ScalarDiv(s, a) }

// Backward seeds the terminal node's gradient to 1.0 and accumulates
// ∂(terminal)/∂(node) into every node reachable through operand edges.
// The caller is responsible for resetting gradients on nodes reused from a
// prior pass.
func Backward(terminal *graph.Node) error {
	return autodiff.Backward(terminal)
}
