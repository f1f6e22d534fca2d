package autodiff

import (
	"fmt"

	"github.com/gradkit-ml/gradkit/internal/graph"
)

// Backward computes ∂(terminal)/∂(node) for every node reachable from
// terminal through operand edges, accumulating into each node's gradient.
//
// Algorithm:
//  1. Topologically order the reachable subgraph (depth-first post-order,
//     keyed on node identity).
//  2. Seed the terminal node's gradient to 1.0 (the derivative of the
//     terminal with respect to itself).
//  3. Visit the ordering in reverse, invoking each node's backward rule
//     exactly once and adding its contributions to the operands' gradients.
//
// The reverse ordering guarantees a node's accumulator has received every
// consumer's contribution before the node's own rule redistributes it, so
// shared sub-expressions and diamond dependencies accumulate correctly.
//
// The caller is responsible for resetting the gradients of any nodes reused
// from a prior pass (typically just the parameters; intermediates are
// created fresh each forward pass).
//
// A cyclic operand graph fails with ErrCyclicGraph before any gradient is
// mutated, so partial results are never observed.
func Backward(terminal *graph.Node) error {
	order, err := graph.TopoSort(terminal)
	if err != nil {
		return fmt.Errorf("backward: %w", err)
	}

	terminal.SetGrad(1.0)

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		op := node.Op()
		if op == nil {
			continue // leaf
		}
		contribs := op.Backward(node.Grad())
		for j, input := range op.Inputs() {
			input.AccumulateGrad(contribs[j])
		}
	}

	return nil
}
