package graph_test

import (
	"errors"
	"testing"

	"github.com/gradkit-ml/gradkit/internal/graph"
)

// newOpNode builds a non-leaf node over the given operands via stubOp.
func newOpNode(value float64, inputs ...*graph.Node) *graph.Node {
	return graph.New(value, "stub", &stubOp{inputs: inputs})
}

// indexOf returns the position of n in order, or -1.
func indexOf(order []*graph.Node, n *graph.Node) int {
	for i, cand := range order {
		if cand == n {
			return i
		}
	}
	return -1
}

// TestTopoSort_Chain tests that every node appears after all of its operands.
func TestTopoSort_Chain(t *testing.T) {
	a := graph.Leaf(1)
	b := newOpNode(2, a)
	c := newOpNode(3, b)

	order, err := graph.TopoSort(c)
	if err != nil {
		t.Fatalf("TopoSort() error = %v", err)
	}

	if len(order) != 3 {
		t.Fatalf("TopoSort() returned %d nodes, want 3", len(order))
	}
	if !(indexOf(order, a) < indexOf(order, b) && indexOf(order, b) < indexOf(order, c)) {
		t.Errorf("order does not respect operand edges: %v", order)
	}
	if order[len(order)-1] != c {
		t.Error("terminal node should be last in post-order")
	}
}

// TestTopoSort_SharedOperand tests that a node consumed twice is ordered once.
func TestTopoSort_SharedOperand(t *testing.T) {
	a := graph.Leaf(3)
	b := newOpNode(9, a, a) // both operand slots reference the same node

	order, err := graph.TopoSort(b)
	if err != nil {
		t.Fatalf("TopoSort() error = %v", err)
	}

	if len(order) != 2 {
		t.Errorf("TopoSort() returned %d nodes, want 2 (identity-keyed visited set)", len(order))
	}
}

// TestTopoSort_Diamond tests a diamond-shaped dependency: r consumes p and q,
// both of which consume a.
func TestTopoSort_Diamond(t *testing.T) {
	a := graph.Leaf(2)
	p := newOpNode(6, a)
	q := newOpNode(3, a)
	r := newOpNode(18, p, q)

	order, err := graph.TopoSort(r)
	if err != nil {
		t.Fatalf("TopoSort() error = %v", err)
	}

	if len(order) != 4 {
		t.Fatalf("TopoSort() returned %d nodes, want 4", len(order))
	}
	ia := indexOf(order, a)
	if ia > indexOf(order, p) || ia > indexOf(order, q) {
		t.Errorf("shared operand must precede both consumers: %v", order)
	}
	if order[len(order)-1] != r {
		t.Error("terminal node should be last in post-order")
	}
}

// TestTopoSort_EqualValuesAreDistinct tests that the visited set keys on
// identity, not value.
func TestTopoSort_EqualValuesAreDistinct(t *testing.T) {
	a := graph.Leaf(1)
	b := graph.Leaf(1) // equal value, distinct node
	c := newOpNode(2, a, b)

	order, err := graph.TopoSort(c)
	if err != nil {
		t.Fatalf("TopoSort() error = %v", err)
	}

	if len(order) != 3 {
		t.Errorf("TopoSort() returned %d nodes, want 3 (equal values are distinct vertices)", len(order))
	}
}

// TestTopoSort_Cycle tests that a cyclic operand relation is rejected
// instead of looping.
func TestTopoSort_Cycle(t *testing.T) {
	// Fabricate a cycle through a mutable stub: a's operation ends up
	// referencing a's consumer. Builders can never produce this; the sort
	// must still refuse it.
	opA := &stubOp{}
	a := graph.New(1, "stub", opA)
	b := newOpNode(2, a)
	opA.inputs = []*graph.Node{b}

	_, err := graph.TopoSort(b)
	if !errors.Is(err, graph.ErrCyclicGraph) {
		t.Fatalf("TopoSort() error = %v, want ErrCyclicGraph", err)
	}
}

// TestTopoSort_SelfCycle tests a node listed as its own operand.
func TestTopoSort_SelfCycle(t *testing.T) {
	op := &stubOp{}
	a := graph.New(1, "stub", op)
	op.inputs = []*graph.Node{a}

	_, err := graph.TopoSort(a)
	if !errors.Is(err, graph.ErrCyclicGraph) {
		t.Fatalf("TopoSort() error = %v, want ErrCyclicGraph", err)
	}
}

// TestTopoSort_SingleLeaf tests the degenerate one-node graph.
func TestTopoSort_SingleLeaf(t *testing.T) {
	a := graph.Leaf(42)

	order, err := graph.TopoSort(a)
	if err != nil {
		t.Fatalf("TopoSort() error = %v", err)
	}
	if len(order) != 1 || order[0] != a {
		t.Errorf("TopoSort() = %v, want [a]", order)
	}
}
