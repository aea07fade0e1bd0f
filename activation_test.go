// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation_test

import (
	"math"
	"sync"
	"testing"

	"github.com/born-ml/activation"
	"github.com/born-ml/activation/autodiff"
	"github.com/born-ml/activation/backend/cpu"
	"github.com/born-ml/activation/tensor"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reference(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func TestActivationKnownValues(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{0, 2, -2}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	y, err := activation.Activation(x)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.5, 0.8808, 0.1192}, y.Data(), 1e-4)
	assert.Equal(t, 0.5, y.At(0))
}

func TestActivationMatchesFormula(t *testing.T) {
	backend := cpu.New()
	x := tensor.Linspace(-30.0, 30.0, 601, backend)

	y, err := activation.Activation(x)
	require.NoError(t, err)

	for i, v := range x.Data() {
		assert.InDelta(t, reference(v), y.Data()[i], 1e-7, "x=%v", v)
	}
}

func TestActivationPreservesShape(t *testing.T) {
	backend := cpu.New()
	shapes := []tensor.Shape{{}, {1}, {5}, {2, 3}, {2, 3, 4}, {1, 2, 1, 3}}

	for _, shape := range shapes {
		x := tensor.Randn[float32](shape, backend)

		y, err := activation.Sigmoid(x)
		require.NoError(t, err)

		assert.True(t, y.Shape().Equal(shape), "shape %v became %v", shape, y.Shape())
		assert.Equal(t, tensor.Float32, y.DType())
	}
}

func TestActivationProperties(t *testing.T) {
	backend := cpu.New()
	x := tensor.Randn[float64](tensor.Shape{1000}, backend)

	y, err := activation.Activation(x)
	require.NoError(t, err)
	yNeg, err := activation.Activation(x.Neg())
	require.NoError(t, err)

	for i, v := range y.Data() {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
		assert.InDelta(t, 1-v, yNeg.Data()[i], 1e-7, "symmetry at x=%v", x.Data()[i])
	}
}

func TestActivationMonotonic(t *testing.T) {
	backend := cpu.New()
	x := tensor.Linspace(-50.0, 50.0, 2001, backend)

	y, err := activation.Activation(x)
	require.NoError(t, err)

	data := y.Data()
	for i := 1; i < len(data); i++ {
		assert.GreaterOrEqual(t, data[i], data[i-1], "at x=%v", x.Data()[i])
	}
}

func TestActivationSaturates(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{-1000, 1000, math.Inf(-1), math.Inf(1)}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	y, err := activation.Activation(x)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 0, 1}, y.Data())
}

func TestActivationDoesNotModifyInput(t *testing.T) {
	backend := cpu.New()
	input := []float32{-3, -1, 0, 1, 3, 7}
	x, err := tensor.FromSlice(input, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	_, err = activation.Activation(x)
	require.NoError(t, err)

	assert.Equal(t, input, x.Data())
}

func TestActivationNilTensor(t *testing.T) {
	var x *tensor.Tensor[float64, *cpu.Backend]

	y, err := activation.Activation(x)

	assert.Nil(t, y)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

func TestActivationThroughAutodiff(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice([]float64{-2, 0, 2}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	y, err := activation.Activation(x)
	require.NoError(t, err)

	grads := autodiff.Backward(y, backend)
	dx := grads[x.Raw()]
	require.NotNil(t, dx)

	for i, v := range x.Data() {
		s := reference(v)
		assert.InDelta(t, s*(1-s), dx.AsFloat64()[i], 1e-7)
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{2, 0.8807970779778823},
		{-2, 0.11920292202211755},
		{-1000, 0},
		{1000, 1},
		{math.Inf(-1), 0},
		{math.Inf(1), 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, activation.Scalar(tt.x), 1e-7, "x=%v", tt.x)
		assert.InDelta(t, tt.want, float64(activation.Scalar(float32(tt.x))), 1e-6, "float32 x=%v", tt.x)
	}

	assert.True(t, math.IsNaN(activation.Scalar(math.NaN())))
}

func TestScalarSymmetry(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.25 {
		assert.InDelta(t, 1-activation.Scalar(x), activation.Scalar(-x), 1e-7, "x=%v", x)
	}
}

type celsius float64

type single float32

func TestScalarNamedType(t *testing.T) {
	got := activation.Scalar(celsius(2))
	assert.InDelta(t, 0.8808, float64(got), 1e-4)

	for _, x := range []float32{-3.7, -0.1, 0.3, 1.9, 12.5} {
		want := 1 / (1 + math32.Exp(-x))
		assert.Equal(t, want, float32(activation.Scalar(single(x))), "single-precision path for x=%v", x)
		assert.Equal(t, want, activation.Scalar(x))
	}
}

func TestConcurrentCallers(t *testing.T) {
	backend := cpu.NewWithConfig(cpu.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 64})
	x := tensor.Linspace(-10.0, 10.0, 1024, backend)
	input := append([]float64(nil), x.Data()...)

	want, err := activation.Activation(x)
	require.NoError(t, err)

	const callers = 16
	var wg sync.WaitGroup
	results := make([][]float64, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				y, err := activation.Activation(x)
				if err == nil {
					results[i] = y.Data()
				}
				errs[i] = err
				return
			}
			y, err := activation.Apply(input)
			if err == nil {
				results[i] = y.([]float64)
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, want.Data(), results[i], "caller %d", i)
	}
	assert.Equal(t, input, x.Data(), "shared input must not change")
}
