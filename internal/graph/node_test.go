package graph_test

import (
	"strings"
	"testing"

	"github.com/gradkit-ml/gradkit/internal/graph"
)

// stubOp is a minimal Operation for store-level tests. It routes the output
// gradient to every input unchanged.
type stubOp struct {
	inputs []*graph.Node
}

func (op *stubOp) Backward(outputGrad float64) []float64 {
	grads := make([]float64, len(op.inputs))
	for i := range grads {
		grads[i] = outputGrad
	}
	return grads
}

func (op *stubOp) Inputs() []*graph.Node {
	return op.inputs
}

// TestLeaf tests leaf node creation.
func TestLeaf(t *testing.T) {
	n := graph.Leaf(3.5)

	if n.Value() != 3.5 {
		t.Errorf("Value() = %f, want 3.5", n.Value())
	}
	if n.Grad() != 0 {
		t.Errorf("Grad() = %f, want 0 (fresh accumulator)", n.Grad())
	}
	if n.Op() != nil {
		t.Error("leaf should have no operation")
	}
	if len(n.Inputs()) != 0 {
		t.Errorf("leaf should have no operands, got %d", len(n.Inputs()))
	}
	if n.Label() != "leaf" {
		t.Errorf("Label() = %q, want %q", n.Label(), "leaf")
	}
}

// TestConstant tests that constants are leaves tagged as literals.
func TestConstant(t *testing.T) {
	c := graph.Constant(-1)

	if c.Value() != -1 {
		t.Errorf("Value() = %f, want -1", c.Value())
	}
	if c.Label() != "const" {
		t.Errorf("Label() = %q, want %q", c.Label(), "const")
	}
	if c.Op() != nil {
		t.Error("constant should have no operation")
	}
}

// TestNew_AttachesOperation tests non-leaf node creation.
func TestNew_AttachesOperation(t *testing.T) {
	a := graph.Leaf(1)
	b := graph.Leaf(2)
	op := &stubOp{inputs: []*graph.Node{a, b}}

	n := graph.New(3, "+", op)

	if n.Value() != 3 {
		t.Errorf("Value() = %f, want 3", n.Value())
	}
	if n.Op() != graph.Operation(op) {
		t.Error("Op() should return the attached operation")
	}
	if len(n.Inputs()) != 2 || n.Inputs()[0] != a || n.Inputs()[1] != b {
		t.Errorf("Inputs() = %v, want [a, b]", n.Inputs())
	}
	if n.Label() != "+" {
		t.Errorf("Label() = %q, want %q", n.Label(), "+")
	}
}

// TestAccumulateGrad tests that accumulation is additive, never overwriting.
func TestAccumulateGrad(t *testing.T) {
	n := graph.Leaf(0)

	n.AccumulateGrad(2.5)
	n.AccumulateGrad(1.5)

	if n.Grad() != 4.0 {
		t.Errorf("Grad() = %f, want 4.0 (2.5 + 1.5)", n.Grad())
	}
}

// TestZeroGrad tests the caller-side gradient reset.
func TestZeroGrad(t *testing.T) {
	n := graph.Leaf(0)
	n.AccumulateGrad(7)

	n.ZeroGrad()

	if n.Grad() != 0 {
		t.Errorf("Grad() = %f after ZeroGrad(), want 0", n.Grad())
	}
}

// TestSetGrad tests gradient seeding.
func TestSetGrad(t *testing.T) {
	n := graph.Leaf(0)
	n.AccumulateGrad(5)

	n.SetGrad(1.0)

	if n.Grad() != 1.0 {
		t.Errorf("Grad() = %f after SetGrad(1.0), want 1.0", n.Grad())
	}
}

// TestSetValue tests in-place value updates on leaves (optimizer step).
func TestSetValue(t *testing.T) {
	n := graph.Leaf(1.0)

	n.SetValue(0.9)

	if n.Value() != 0.9 {
		t.Errorf("Value() = %f after SetValue(0.9), want 0.9", n.Value())
	}
}

// TestString tests the diagnostic representation.
func TestString(t *testing.T) {
	n := graph.Leaf(2)
	s := n.String()

	if !strings.Contains(s, "leaf") || !strings.Contains(s, "2") {
		t.Errorf("String() = %q, want it to mention the label and value", s)
	}
}
