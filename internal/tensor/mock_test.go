package tensor

import "math"

// Verify that mockBackend implements Backend.
var _ Backend = (*mockBackend)(nil)

// mockBackend is a naive float64-based backend for testing the tensor package
// without importing a real backend.
type mockBackend struct{}

func (m *mockBackend) Name() string   { return "mock" }
func (m *mockBackend) Device() Device { return CPU }

func (m *mockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, func(x, y float64) float64 { return x + y })
}

func (m *mockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, func(x, y float64) float64 { return x / y })
}

func (m *mockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, func(x, y float64) float64 { return x - y })
}

func (m *mockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, func(x, y float64) float64 { return x * y })
}

func (m *mockBackend) Exp(x *RawTensor) *RawTensor {
	return m.unary(x, math.Exp)
}

func (m *mockBackend) Neg(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 { return -v })
}

func (m *mockBackend) Sigmoid(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

func (m *mockBackend) SigmoidBackward(output, grad *RawTensor) *RawTensor {
	return m.binary(output, grad, func(y, g float64) float64 { return g * y * (1 - y) })
}

func (m *mockBackend) unary(x *RawTensor, f func(float64) float64) *RawTensor {
	result := NewRawLike(x, m.Device())
	for i := 0; i < x.NumElements(); i++ {
		setFloat(result, i, f(getFloat(x, i)))
	}
	return result
}

func (m *mockBackend) binary(a, b *RawTensor, f func(float64, float64) float64) *RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic("mock: shape mismatch")
	}
	result := NewRawLike(a, m.Device())
	for i := 0; i < a.NumElements(); i++ {
		setFloat(result, i, f(getFloat(a, i), getFloat(b, i)))
	}
	return result
}

func getFloat(r *RawTensor, i int) float64 {
	if r.DType() == Float32 {
		return float64(r.AsFloat32()[i])
	}
	return r.AsFloat64()[i]
}

func setFloat(r *RawTensor, i int, v float64) {
	if r.DType() == Float32 {
		r.AsFloat32()[i] = float32(v)
		return
	}
	r.AsFloat64()[i] = v
}
