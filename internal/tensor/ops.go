package tensor

// Sigmoid applies the logistic function element-wise: 1 / (1 + exp(-x)).
// The result is a new tensor with the same shape and dtype; t is not modified.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{0, 2, -2}, Shape{3}, backend)
//	y := x.Sigmoid() // [0.5, 0.8808, 0.1192]
func (t *Tensor[T, B]) Sigmoid() *Tensor[T, B] {
	result := t.backend.Sigmoid(t.raw)
	return New[T, B](result, t.backend)
}

// Exp computes e^x element-wise.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	result := t.backend.Exp(t.raw)
	return New[T, B](result, t.backend)
}

// Neg negates every element.
func (t *Tensor[T, B]) Neg() *Tensor[T, B] {
	result := t.backend.Neg(t.raw)
	return New[T, B](result, t.backend)
}

// Add performs element-wise addition. Shapes must match.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division. Shapes must match.
// Division by zero follows IEEE-754 (±Inf or NaN).
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction. Shapes must match.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication. Shapes must match.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}
