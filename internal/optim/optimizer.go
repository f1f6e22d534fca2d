// Package optim implements optimization algorithms for training networks
// built on the scalar autodiff engine.
//
// Gradients live on the parameter nodes themselves, so optimizers read them
// directly after a backward pass:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := 0; step < steps; step++ {
//	    opt.ZeroGrad()
//	    loss := forward(model)
//	    if err := autodiff.Backward(loss); err != nil {
//	        return err
//	    }
//	    opt.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter, reading the
	// gradients accumulated by the last backward pass.
	Step()

	// ZeroGrad resets every parameter's gradient accumulator to 0.0.
	// Must be called before each backward pass; stale gradients from a
	// prior iteration otherwise leak into the next update.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}
