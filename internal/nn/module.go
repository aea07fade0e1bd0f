// Package nn implements neural network modules.
//
// Modules wrap a tensor operation behind a uniform Forward method so they can
// be swapped or chained. Activation modules carry no trainable parameters.
package nn

import (
	"github.com/born-ml/activation/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Type parameter T is the element type, B the compute backend.
type Module[T tensor.Float, B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B]
}

// Sequential applies modules in order, feeding each output to the next.
type Sequential[T tensor.Float, B tensor.Backend] struct {
	modules []Module[T, B]
}

// NewSequential creates a Sequential container.
func NewSequential[T tensor.Float, B tensor.Backend](modules ...Module[T, B]) *Sequential[T, B] {
	return &Sequential[T, B]{modules: modules}
}

// Forward runs every module in order.
func (s *Sequential[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	out := input
	for _, m := range s.modules {
		out = m.Forward(out)
	}
	return out
}

// Len returns the number of modules.
func (s *Sequential[T, B]) Len() int {
	return len(s.modules)
}
