//go:build windows

package webgpu

import (
	"github.com/born-ml/activation/internal/tensor"
)

// onHost reports whether x must be computed by the host backend (float64).
// Non-float dtypes also go to the host so they fail with its error message.
func onHost(x *tensor.RawTensor) bool {
	return x == nil || x.DType() != tensor.Float32
}

// Sigmoid applies sigmoid activation: 1 / (1 + exp(-x)).
func (b *Backend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	if onHost(x) {
		return b.host.Sigmoid(x)
	}
	result, err := b.runUnaryOp(x, "sigmoid", sigmoidShader)
	if err != nil {
		panic("webgpu: Sigmoid: " + err.Error())
	}
	return result
}

// SigmoidBackward computes grad * output * (1 - output).
func (b *Backend) SigmoidBackward(output, grad *tensor.RawTensor) *tensor.RawTensor {
	if onHost(output) {
		return b.host.SigmoidBackward(output, grad)
	}
	result, err := b.runBinaryOp(output, grad, "sigmoid_backward", sigmoidBackwardShader)
	if err != nil {
		panic("webgpu: SigmoidBackward: " + err.Error())
	}
	return result
}

// Exp computes exp(x) on GPU.
func (b *Backend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	if onHost(x) {
		return b.host.Exp(x)
	}
	result, err := b.runUnaryOp(x, "exp", expShader)
	if err != nil {
		panic("webgpu: Exp: " + err.Error())
	}
	return result
}

// Neg computes -x on GPU.
func (b *Backend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	if onHost(x) {
		return b.host.Neg(x)
	}
	result, err := b.runUnaryOp(x, "neg", negShader)
	if err != nil {
		panic("webgpu: Neg: " + err.Error())
	}
	return result
}

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	if onHost(a) {
		return b.host.Add(a, other)
	}
	result, err := b.runBinaryOp(a, other, "add", addShader)
	if err != nil {
		panic("webgpu: Add: " + err.Error())
	}
	return result
}

// Div performs element-wise division on GPU.
func (b *Backend) Div(a, other *tensor.RawTensor) *tensor.RawTensor {
	if onHost(a) {
		return b.host.Div(a, other)
	}
	result, err := b.runBinaryOp(a, other, "div", divShader)
	if err != nil {
		panic("webgpu: Div: " + err.Error())
	}
	return result
}

// Sub performs element-wise subtraction on GPU.
func (b *Backend) Sub(a, other *tensor.RawTensor) *tensor.RawTensor {
	if onHost(a) {
		return b.host.Sub(a, other)
	}
	result, err := b.runBinaryOp(a, other, "sub", subShader)
	if err != nil {
		panic("webgpu: Sub: " + err.Error())
	}
	return result
}

// Mul performs element-wise multiplication on GPU.
func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	if onHost(a) {
		return b.host.Mul(a, other)
	}
	result, err := b.runBinaryOp(a, other, "mul", mulShader)
	if err != nil {
		panic("webgpu: Mul: " + err.Error())
	}
	return result
}
