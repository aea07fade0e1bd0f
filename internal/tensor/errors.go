package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNilTensor         = errors.New("tensor is nil")
	ErrUnsupportedDType  = errors.New("unsupported dtype")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrDeviceUnavailable = errors.New("device unavailable")
)

// DTypeError reports an operation applied to a tensor of a dtype it does not support.
type DTypeError struct {
	Op    string   // Operation name (e.g., "sigmoid")
	DType DataType // Offending dtype
}

// Error implements the error interface.
func (e *DTypeError) Error() string {
	return fmt.Sprintf("%s: %s (only float32/float64 supported)", e.Op, e.DType)
}

// Unwrap returns ErrUnsupportedDType so callers can match with errors.Is.
func (e *DTypeError) Unwrap() error {
	return ErrUnsupportedDType
}

// CheckFloat returns a *DTypeError if x is not a float tensor, or ErrNilTensor if x is nil.
func CheckFloat(op string, x *RawTensor) error {
	if x == nil {
		return fmt.Errorf("%s: %w", op, ErrNilTensor)
	}
	if !x.DType().IsFloat() {
		return &DTypeError{Op: op, DType: x.DType()}
	}
	return nil
}
