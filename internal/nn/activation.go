package nn

import (
	"github.com/born-ml/activation/internal/tensor"
)

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), making it useful for
// binary classification and gate mechanisms in LSTMs/GRUs.
//
// Example:
//
//	sigmoid := nn.NewSigmoid[float32, *cpu.CPUBackend]()
//	output := sigmoid.Forward(input)  // Values in range (0, 1)
type Sigmoid[T tensor.Float, B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[T tensor.Float, B tensor.Backend]() *Sigmoid[T, B] {
	return &Sigmoid[T, B]{}
}

// Forward applies Sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
func (s *Sigmoid[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return input.Sigmoid()
}

// String returns the module name.
func (s *Sigmoid[T, B]) String() string {
	return "Sigmoid()"
}
