package autodiff

import (
	"errors"

	"github.com/gradkit-ml/gradkit/internal/graph"
)

// Common errors.
var (
	// ErrUnsupportedExponent reports that Pow was given an exponent that is
	// not a plain numeric scalar (for example a graph node).
	ErrUnsupportedExponent = errors.New("pow: exponent must be a numeric scalar")

	// ErrCyclicGraph reports that Backward found a cycle in the operand
	// relation. No gradient is mutated when this is returned.
	ErrCyclicGraph = graph.ErrCyclicGraph
)
