// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/activation/internal/tensor"

// Errors reported by tensor operations. Match with errors.Is.
var (
	ErrNilTensor         = tensor.ErrNilTensor
	ErrUnsupportedDType  = tensor.ErrUnsupportedDType
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrDeviceUnavailable = tensor.ErrDeviceUnavailable
)

// DTypeError reports an operation applied to a tensor of a dtype it does not
// support. It unwraps to ErrUnsupportedDType.
type DTypeError = tensor.DTypeError

// CheckFloat returns an error if x is nil or not a float32/float64 tensor.
func CheckFloat(op string, x *RawTensor) error {
	return tensor.CheckFloat(op, x)
}
