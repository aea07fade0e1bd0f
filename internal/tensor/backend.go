package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: Pure Go, parallel over large tensors
//   - WebGPU: WGSL compute shaders (windows)
//
// Backends panic on misuse (wrong dtype, mismatched shapes). Callers that need
// an error instead validate with CheckFloat before dispatching.
type Backend interface {
	// Element-wise binary operations (operands must share a shape).
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise math operations.
	Exp(x *RawTensor) *RawTensor // exponential
	Neg(x *RawTensor) *RawTensor // negation

	// Activation functions.
	Sigmoid(x *RawTensor) *RawTensor                      // 1 / (1 + exp(-x))
	SigmoidBackward(output, grad *RawTensor) *RawTensor // grad * output * (1 - output)

	// Metadata
	Name() string
	Device() Device
}
