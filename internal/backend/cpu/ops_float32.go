package cpu

import "github.com/chewxy/math32"

// Float32 kernels. Each writes dst[i] from the same index of its inputs.

func sigmoidFloat32(dst, src []float32) {
	for i, v := range src {
		dst[i] = 1 / (1 + math32.Exp(-v))
	}
}

func sigmoidBackwardFloat32(dst, y, grad []float32) {
	for i := range dst {
		dst[i] = grad[i] * y[i] * (1 - y[i])
	}
}

func expFloat32(dst, src []float32) {
	for i, v := range src {
		dst[i] = math32.Exp(v)
	}
}

func negFloat32(dst, src []float32) {
	for i, v := range src {
		dst[i] = -v
	}
}

func subFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func addFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func divFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}
