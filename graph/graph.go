// Copyright 2025 GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph exposes the scalar computation graph.
//
// A Node holds a forward value, a gradient accumulator, and references to
// the nodes it was derived from. Leaves wrap inputs, parameters, and
// constants; the autodiff package's operator builders create everything
// else.
//
// Example:
//
//	import (
//	    "github.com/gradkit-ml/gradkit/autodiff"
//	    "github.com/gradkit-ml/gradkit/graph"
//	)
//
//	func main() {
//	    x := graph.Leaf(3.0)
//	    y := autodiff.Mul(x, x)
//	    _ = autodiff.Backward(y)
//	    fmt.Println(x.Grad()) // 6.0
//	}
package graph

import "github.com/gradkit-ml/gradkit/internal/graph"

// Node is one vertex of the computation graph.
type Node = graph.Node

// Operation is the local backward rule attached to a non-leaf node.
type Operation = graph.Operation

// ErrCyclicGraph reports a cycle in the operand relation.
var ErrCyclicGraph = graph.ErrCyclicGraph

// Leaf creates a node with no operands and no backward rule.
func Leaf(value float64) *Node {
	return graph.Leaf(value)
}

// Constant creates a leaf node tagged as a literal.
func Constant(value float64) *Node {
	return graph.Constant(value)
}

// TopoSort returns the nodes reachable from root in topological order
// (every node after all of its operands), or ErrCyclicGraph.
func TopoSort(root *Node) ([]*Node, error) {
	return graph.TopoSort(root)
}
