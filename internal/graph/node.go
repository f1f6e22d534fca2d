// Package graph implements the scalar computation graph for reverse-mode
// automatic differentiation.
//
// A Node is one vertex of the directed acyclic graph built during a forward
// computation. It holds a forward value, a gradient accumulator, and a
// reference to the operation that produced it. Leaves (inputs, parameters,
// constants) have no operation and no operands.
//
// Nodes are shared: many operations may reference the same node as an
// operand. The only mutation after creation is gradient accumulation during
// a backward pass (and value updates on leaves by an optimizer), so aliasing
// is safe without any ownership transfer. Node identity is pointer identity;
// two distinct nodes holding equal values are distinct vertices.
package graph

import "fmt"

// Operation is the local backward rule attached to a non-leaf node at
// creation time. Implementations live in the autodiff/ops package, one per
// primitive, each carrying just its operand references and any scalar
// intermediate the rule needs (a power exponent, a forward tanh value).
type Operation interface {
	// Backward computes the chain-rule contribution to each operand's
	// gradient given the node's accumulated output gradient. The returned
	// slice is parallel to Inputs().
	Backward(outputGrad float64) []float64

	// Inputs returns the operand nodes this operation was applied to.
	Inputs() []*Node
}

// Node is one vertex of the computation graph.
//
// The value and the producing operation are fixed at creation; only the
// gradient accumulator mutates during backward passes. Leaf values may
// additionally be updated in place between passes via SetValue (gradient
// descent on parameters).
type Node struct {
	value float64
	grad  float64
	label string
	op    Operation
}

// New creates a node produced by the given operation.
//
// The label identifies the primitive for diagnostics only. Operator builders
// are the only callers; user code creates nodes through Leaf, Constant, or
// the builders.
func New(value float64, label string, op Operation) *Node {
	return &Node{
		value: value,
		label: label,
		op:    op,
	}
}

// Leaf creates a node with no operands and no backward rule.
//
// Leaves wrap inputs, weights, and biases. Their gradient starts at 0.0 and
// receives contributions during backward passes.
func Leaf(value float64) *Node {
	return &Node{value: value, label: "leaf"}
}

// Constant creates a leaf node tagged as a literal.
//
// Operator builders promote plain scalars to constants so that mixed
// node/scalar expressions compose transparently in either operand position.
func Constant(value float64) *Node {
	return &Node{value: value, label: "const"}
}

// Value returns the forward result of the operation that produced this node
// (or the leaf input).
func (n *Node) Value() float64 {
	return n.value
}

// SetValue overwrites the node's value in place.
//
// Intended for optimizers updating leaf parameters between passes
// (value -= lr * gradient). Overwriting a non-leaf value does not
// recompute anything downstream.
func (n *Node) SetValue(value float64) {
	n.value = value
}

// Grad returns the accumulated gradient ∂(terminal)/∂(this node).
//
// The value is meaningful only after a backward pass; before one it is
// whatever the last pass (or ZeroGrad) left behind.
func (n *Node) Grad() float64 {
	return n.grad
}

// AccumulateGrad adds delta to the gradient accumulator.
//
// Accumulation is additive, never overwriting, so a node reached through
// multiple paths (shared sub-expression) collects every consumer's
// contribution.
func (n *Node) AccumulateGrad(delta float64) {
	n.grad += delta
}

// SetGrad overwrites the gradient accumulator.
//
// The backward pass uses this to seed the terminal node's gradient to 1.0.
// Backward rules must use AccumulateGrad instead.
func (n *Node) SetGrad(grad float64) {
	n.grad = grad
}

// ZeroGrad resets the gradient accumulator to 0.0.
//
// Every node that participates in a subsequent forward+backward cycle must
// be reset before that cycle's backward pass; stale gradients from a prior
// pass are a correctness bug. Intermediate nodes are typically created fresh
// each pass, so in practice only parameters need explicit resetting.
func (n *Node) ZeroGrad() {
	n.grad = 0
}

// Label returns the operation tag of the primitive that produced the node
// ("leaf" or "const" for leaves). Diagnostics only.
func (n *Node) Label() string {
	return n.label
}

// Op returns the producing operation, or nil for leaves.
func (n *Node) Op() Operation {
	return n.op
}

// Inputs returns the operand nodes this node was derived from.
// Empty for leaves.
func (n *Node) Inputs() []*Node {
	if n.op == nil {
		return nil
	}
	return n.op.Inputs()
}

// String implements fmt.Stringer for diagnostics.
func (n *Node) String() string {
	return fmt.Sprintf("Node(op=%s, value=%g, grad=%g)", n.label, n.value, n.grad)
}
