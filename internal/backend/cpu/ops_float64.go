package cpu

import "math"

// Float64 kernels

func sigmoidFloat64(dst, src []float64) {
	for i, v := range src {
		dst[i] = 1 / (1 + math.Exp(-v))
	}
}

func sigmoidBackwardFloat64(dst, y, grad []float64) {
	for i := range dst {
		dst[i] = grad[i] * y[i] * (1 - y[i])
	}
}

func expFloat64(dst, src []float64) {
	for i, v := range src {
		dst[i] = math.Exp(v)
	}
}

func negFloat64(dst, src []float64) {
	for i, v := range src {
		dst[i] = -v
	}
}

func subFloat64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func addFloat64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func divFloat64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}
