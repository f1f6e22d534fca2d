package optim

import "github.com/gradkit-ml/gradkit/internal/nn"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	value = value - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	value = value - lr * velocity
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.0, range [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step applies one gradient-descent update to every parameter.
func (s *SGD) Step() {
	for _, p := range s.params {
		g := p.Grad()
		if s.momentum != 0 {
			v := s.momentum*s.velocities[p] + g
			s.velocities[p] = v
			g = v
		}
		p.Node().SetValue(p.Value() - s.lr*g)
	}
}

// ZeroGrad resets every parameter's gradient accumulator to 0.0.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}
