// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation computes the logistic sigmoid 1 / (1 + exp(-x)) over
// scalars and tensors.
//
// The result always has the shape and element type of the input; the input is
// never modified. No clamping is applied: exp overflow saturates the result to
// exactly 0 or 1 per IEEE-754, and NaN propagates.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{0, 2, -2}, tensor.Shape{3}, backend)
//	y, err := activation.Activation(x) // [0.5 0.8808 0.1192]
package activation

import (
	"fmt"
	"math"
	"reflect"

	"github.com/born-ml/activation/tensor"
	"github.com/chewxy/math32"
)

// Activation returns a new tensor holding 1 / (1 + exp(-x)) element-wise,
// computed by x's backend.
//
// Returns an error wrapping tensor.ErrNilTensor for a nil tensor, or a
// *tensor.DTypeError if the underlying storage is not float32/float64.
func Activation[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if x == nil || x.Raw() == nil {
		return nil, fmt.Errorf("activation: %w", tensor.ErrNilTensor)
	}
	if err := tensor.CheckFloat("activation", x.Raw()); err != nil {
		return nil, err
	}
	return x.Sigmoid(), nil
}

// Sigmoid is Activation under the function's conventional name.
func Sigmoid[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return Activation(x)
}

// Scalar returns 1 / (1 + exp(-x)). Types whose underlying type is float32
// are evaluated in single precision.
func Scalar[T tensor.Float](x T) T {
	if reflect.TypeOf(x).Kind() == reflect.Float32 {
		return T(1 / (1 + math32.Exp(-float32(x))))
	}
	return T(1 / (1 + math.Exp(-float64(x))))
}
