package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorSigmoidDispatch(t *testing.T) {
	x, err := FromSlice([]float64{0, 2, -2}, Shape{3}, &mockBackend{})
	require.NoError(t, err)

	y := x.Sigmoid()

	assert.True(t, y.Shape().Equal(x.Shape()))
	assert.InDeltaSlice(t, []float64{0.5, 0.8807970779778823, 0.11920292202211755}, y.Data(), 1e-12)
	assert.Equal(t, []float64{0, 2, -2}, x.Data(), "input must not be modified")
}

func TestTensorElementwiseOps(t *testing.T) {
	b := &mockBackend{}
	a, err := FromSlice([]float32{1, 2, 3}, Shape{3}, b)
	require.NoError(t, err)
	c, err := FromSlice([]float32{4, 5, 6}, Shape{3}, b)
	require.NoError(t, err)

	assert.Equal(t, []float32{4, 10, 18}, a.Mul(c).Data())
	assert.Equal(t, []float32{-3, -3, -3}, a.Sub(c).Data())
	assert.Equal(t, []float32{5, 7, 9}, a.Add(c).Data())
	assert.Equal(t, []float32{0.25, 0.4, 0.5}, a.Div(c).Data())
	assert.Equal(t, []float32{-1, -2, -3}, a.Neg().Data())
	assert.InDelta(t, 2.7182817, a.Exp().Data()[0], 1e-6)
}

func TestTensorClone(t *testing.T) {
	x := Full[float64](Shape{2}, 1, &mockBackend{})
	c := x.Clone()
	c.Data()[0] = 5
	assert.Equal(t, 1.0, x.Data()[0])
}
