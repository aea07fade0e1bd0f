//go:build windows

package webgpu

import (
	"math"
	"testing"

	"github.com/born-ml/activation/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	t.Cleanup(backend.Release)
	return backend
}

func TestIsAvailable(t *testing.T) {
	t.Logf("WebGPU available: %v", IsAvailable())
}

func TestBackendInterface(t *testing.T) {
	backend := newBackend(t)

	var _ tensor.Backend = backend
	assert.Equal(t, tensor.WebGPU, backend.Device())
	assert.Equal(t, "WebGPU", backend.Name())
}

func TestSigmoid(t *testing.T) {
	backend := newBackend(t)

	input := make([]float32, 1000) // spans several workgroups
	for i := range input {
		input[i] = float32(i%41) - 20
	}
	x, err := tensor.NewRaw(tensor.Shape{10, 100}, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)
	copy(x.AsFloat32(), input)

	y := backend.Sigmoid(x)

	require.True(t, y.Shape().Equal(tensor.Shape{10, 100}))
	for i, v := range y.AsFloat32() {
		want := 1 / (1 + math.Exp(-float64(input[i])))
		assert.InDelta(t, want, float64(v), 1e-5, "x=%v", input[i])
	}
}

func TestSigmoidFloat64FallsBackToHost(t *testing.T) {
	backend := newBackend(t)

	x, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.WebGPU)
	require.NoError(t, err)
	copy(x.AsFloat64(), []float64{0, 2, -2})

	y := backend.Sigmoid(x).AsFloat64()
	assert.InDeltaSlice(t, []float64{0.5, 0.8808, 0.1192}, y, 1e-4)
}

func TestSigmoidBackward(t *testing.T) {
	backend := newBackend(t)

	y, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)
	copy(y.AsFloat32(), []float32{0.5, 0.25})
	g, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)
	copy(g.AsFloat32(), []float32{1, 2})

	dx := backend.SigmoidBackward(y, g).AsFloat32()
	assert.InDeltaSlice(t, []float32{0.25, 0.375}, dx, 1e-6)
}

func TestAddDiv(t *testing.T) {
	backend := newBackend(t)

	a, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)
	copy(a.AsFloat32(), []float32{1, 2, 3})
	b, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)
	copy(b.AsFloat32(), []float32{4, 5, 6})

	assert.InDeltaSlice(t, []float32{5, 7, 9}, backend.Add(a, b).AsFloat32(), 1e-6)
	assert.InDeltaSlice(t, []float32{0.25, 0.4, 0.5}, backend.Div(a, b).AsFloat32(), 1e-6)
}
