package cpu

import (
	"github.com/born-ml/activation/internal/tensor"
)

// Sigmoid computes the logistic function element-wise: 1 / (1 + exp(-x)).
//
// No clamping is applied. exp(-x) overflowing to +Inf drives the result to
// exactly 0; underflowing to 0 drives it to exactly 1. NaN propagates.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sigmoid", x, sigmoidFloat32, sigmoidFloat64)
}

// SigmoidBackward computes grad * y * (1 - y) where y = Sigmoid(x) is the
// forward output.
func (cpu *CPUBackend) SigmoidBackward(output, grad *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sigmoid_backward", output, grad, sigmoidBackwardFloat32, sigmoidBackwardFloat64)
}
