package nn

import (
	"math"
	"testing"

	"github.com/born-ml/activation/internal/autodiff"
	"github.com/born-ml/activation/internal/backend/cpu"
	"github.com/born-ml/activation/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

// sigmoid computes sigmoid for testing.
func sigmoid(x float32) float32 {
	return 1.0 / (1.0 + float32(math.Exp(float64(-x))))
}

// TestSigmoidForward tests Sigmoid forward pass.
func TestSigmoidForward(t *testing.T) {
	backend := cpu.New()
	module := NewSigmoid[float32, *cpu.CPUBackend]()

	input, err := tensor.FromSlice([]float32{-2.0, -1.0, 0.0, 1.0, 2.0}, tensor.Shape{5}, backend)
	require.NoError(t, err)

	output := module.Forward(input)

	for i, x := range input.Data() {
		got := output.Data()[i]
		if math.Abs(float64(got-sigmoid(x))) > 1e-6 {
			t.Errorf("Sigmoid(%v) = %v, expected %v", x, got, sigmoid(x))
		}
	}
}

// TestSigmoidShape tests that Sigmoid preserves input shape.
func TestSigmoidShape(t *testing.T) {
	backend := cpu.New()
	module := NewSigmoid[float64, *cpu.CPUBackend]()

	for _, shape := range []tensor.Shape{{}, {7}, {3, 4}, {2, 3, 4}} {
		input := tensor.Randn[float64](shape, backend)
		output := module.Forward(input)
		assert.True(t, output.Shape().Equal(shape), "input %v -> output %v", shape, output.Shape())
	}
}

// TestSigmoidModuleGradient runs the module on the autodiff backend.
func TestSigmoidModuleGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	module := NewSigmoid[float32, Backend]()

	backend.Tape().StartRecording()
	x, err := tensor.FromSlice([]float32{0, 1}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	grads := autodiff.Backward(module.Forward(x), backend)

	s := sigmoid(1)
	assert.InDelta(t, 0.25, grads[x.Raw()].AsFloat32()[0], 1e-7)
	assert.InDelta(t, s*(1-s), grads[x.Raw()].AsFloat32()[1], 1e-6)
}

func TestSequential(t *testing.T) {
	backend := cpu.New()
	seq := NewSequential[float64, *cpu.CPUBackend](
		NewSigmoid[float64, *cpu.CPUBackend](),
		NewSigmoid[float64, *cpu.CPUBackend](),
	)
	require.Equal(t, 2, seq.Len())

	x := tensor.Scalar[float64](0, backend)
	y := seq.Forward(x)

	// σ(σ(0)) = σ(0.5)
	assert.InDelta(t, 1/(1+math.Exp(-0.5)), y.Item(), 1e-12)

	var _ Module[float64, *cpu.CPUBackend] = seq
	assert.Equal(t, "Sigmoid()", NewSigmoid[float64, *cpu.CPUBackend]().String())
}
