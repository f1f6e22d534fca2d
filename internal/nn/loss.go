package nn

import (
	"fmt"

	"github.com/gradkit-ml/gradkit/internal/autodiff"
	"github.com/gradkit-ml/gradkit/internal/graph"
)

// MSELoss computes mean squared error loss.
//
// Loss = mean((prediction - target)²)
//
// Targets are plain scalars; they are promoted to constant leaves so the
// loss node closes over the prediction subgraph only.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward(preds, []float64{1, -1, -1, 1})
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes mean((predictions - targets)²) as a single scalar node.
//
// Panics if the slices differ in length or are empty.
func (m *MSELoss) Forward(predictions []*graph.Node, targets []float64) *graph.Node {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("MSELoss: %d predictions vs %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("MSELoss: no predictions")
	}

	var sum *graph.Node
	for i, pred := range predictions {
		diff := autodiff.SubScalar(pred, targets[i])
		sq := autodiff.Mul(diff, diff)
		if sum == nil {
			sum = sq
		} else {
			sum = autodiff.Add(sum, sq)
		}
	}

	return autodiff.DivScalar(sum, float64(len(predictions)))
}

// Parameters returns an empty slice: loss functions have no trainable
// parameters.
func (m *MSELoss) Parameters() []*Parameter {
	return nil
}
