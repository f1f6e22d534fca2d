// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Operator builders consume existing graph nodes and produce new ones,
// incrementally constructing a DAG as the forward computation executes; each
// builder computes the forward scalar result and attaches the matching
// backward rule from the ops package. Backward then walks the finished DAG
// from a terminal node in reverse topological order, accumulating
// ∂(terminal)/∂(node) into every reachable node.
//
// Usage:
//
//	x := graph.Leaf(3.0)
//	y := autodiff.Mul(x, x) // y = x²
//
//	if err := autodiff.Backward(y); err != nil {
//	    return err
//	}
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6.0
package autodiff

import (
	"fmt"
	"math"

	"github.com/gradkit-ml/gradkit/internal/autodiff/ops"
	"github.com/gradkit-ml/gradkit/internal/graph"
)

// Add returns a node holding a + b.
func Add(a, b *graph.Node) *graph.Node {
	return graph.New(a.Value()+b.Value(), "+", ops.NewAddOp(a, b))
}

// Mul returns a node holding a * b.
func Mul(a, b *graph.Node) *graph.Node {
	return graph.New(a.Value()*b.Value(), "*", ops.NewMulOp(a, b))
}

// Pow returns a node holding a raised to the given exponent.
//
// The exponent must be a plain Go numeric scalar (int or float kinds).
// Graph-valued exponents are out of scope for this catalog: passing a
// *graph.Node, or any other type, fails with ErrUnsupportedExponent before
// any forward evaluation.
func Pow(a *graph.Node, exponent any) (*graph.Node, error) {
	var p float64
	switch e := exponent.(type) {
	case int:
		p = float64(e)
	case int32:
		p = float64(e)
	case int64:
		p = float64(e)
	case float32:
		p = float64(e)
	case float64:
		p = e
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedExponent, exponent)
	}
	return powFloat(a, p), nil
}

// powFloat is the internal power builder with an already-validated exponent.
func powFloat(a *graph.Node, p float64) *graph.Node {
	return graph.New(math.Pow(a.Value(), p), "pow", ops.NewPowOp(a, p))
}

// Neg returns a node holding -a, defined as a * (-1).
func Neg(a *graph.Node) *graph.Node {
	return Mul(a, graph.Constant(-1))
}

// Sub returns a node holding a - b, defined as a + (-b).
func Sub(a, b *graph.Node) *graph.Node {
	return Add(a, Neg(b))
}

// Div returns a node holding a / b, defined as a * b^(-1).
//
// Division by a node whose value is exactly zero is not guarded: the forward
// value and the backward contributions propagate as IEEE-754 non-finite
// values (±Inf, NaN).
func Div(a, b *graph.Node) *graph.Node {
	return Mul(a, powFloat(b, -1))
}

// Tanh returns a node holding the hyperbolic tangent of a,
// (e^(2a) - 1) / (e^(2a) + 1).
func Tanh(a *graph.Node) *graph.Node {
	t := math.Tanh(a.Value())
	return graph.New(t, "tanh", ops.NewTanhOp(a, t))
}

// Exp returns a node holding e^a.
func Exp(a *graph.Node) *graph.Node {
	out := math.Exp(a.Value())
	return graph.New(out, "exp", ops.NewExpOp(a, out))
}

// AddScalar returns a node holding a + s, promoting the scalar to a constant
// leaf. Addition commutes, so this covers the scalar in either operand
// position.
func AddScalar(a *graph.Node, s float64) *graph.Node {
	return Add(a, graph.Constant(s))
}

// MulScalar returns a node holding a * s, promoting the scalar to a constant
// leaf. Multiplication commutes, so this covers the scalar in either operand
// position.
func MulScalar(a *graph.Node, s float64) *graph.Node {
	return Mul(a, graph.Constant(s))
}

// SubScalar returns a node holding a - s.
func SubScalar(a *graph.Node, s float64) *graph.Node {
	return Sub(a, graph.Constant(s))
}

// ScalarSub returns a node holding s - a (the scalar as left operand).
func ScalarSub(s float64, a *graph.Node) *graph.Node {
	return Sub(graph.Constant(s), a)
}

// DivScalar returns a node holding a / s.
func DivScalar(a *graph.Node, s float64) *graph.Node {
	return Div(a, graph.Constant(s))
}

// ScalarDiv returns a node holding s / a (the scalar as left operand).
func ScalarDiv(s float64, a *graph.Node) *graph.Node {
	return Div(graph.Constant(s), a)
}
