package ops

import "github.com/born-ml/activation/internal/tensor"

// NegOp represents negation: y = -x.
type NegOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewNegOp creates a new NegOp.
func NewNegOp(input, output *tensor.RawTensor) *NegOp {
	return &NegOp{
		input:  input,
		output: output,
	}
}

// Backward returns -grad_output.
func (op *NegOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Neg(outputGrad)}
}

// Inputs returns the input tensor [x].
func (op *NegOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor -x.
func (op *NegOp) Output() *tensor.RawTensor {
	return op.output
}
