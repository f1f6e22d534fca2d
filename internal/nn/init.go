package nn

import "math/rand"

// Uniform returns n values drawn from the uniform distribution over [-1, 1).
//
// This is the weight initialization used by Neuron; biases start at zero.
func Uniform(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		//nolint:gosec // math/rand is fine for weight initialization
		values[i] = rand.Float64()*2.0 - 1.0
	}
	return values
}
