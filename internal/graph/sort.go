package graph

import "errors"

// ErrCyclicGraph reports that the operand relation reachable from a node
// contains a cycle, which makes a topological ordering ill-defined.
var ErrCyclicGraph = errors.New("graph: cycle detected in operand references")

// Depth-first traversal marks. A node moves unvisited -> onStack -> done;
// meeting an onStack node again means the operand relation is cyclic.
type mark uint8

const (
	unvisited mark = iota
	onStack
	done
)

// TopoSort returns every node reachable from root through operand edges, in
// topological order: each node appears after all of its operands (post-order
// of an iterative depth-first traversal).
//
// The visited set is keyed on node identity, never on value, so two distinct
// nodes with coincidentally equal scalars are ordered independently, and a
// node shared by multiple consumers appears exactly once.
//
// A cyclic operand relation fails with ErrCyclicGraph instead of looping.
func TopoSort(root *Node) ([]*Node, error) {
	type frame struct {
		node *Node
		next int // index of the next operand to descend into
	}

	marks := map[*Node]mark{root: onStack}
	stack := []frame{{node: root}}
	var order []*Node

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		inputs := f.node.Inputs()

		if f.next < len(inputs) {
			in := inputs[f.next]
			f.next++
			switch marks[in] {
			case unvisited:
				marks[in] = onStack
				stack = append(stack, frame{node: in})
			case onStack:
				return nil, ErrCyclicGraph
			case done:
				// Shared operand, already ordered.
			}
			continue
		}

		// All operands ordered; the node itself is ready.
		marks[f.node] = done
		order = append(order, f.node)
		stack = stack[:len(stack)-1]
	}

	return order, nil
}
