// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"fmt"
	"reflect"

	"github.com/born-ml/activation/internal/backend/cpu"
	"github.com/born-ml/activation/tensor"
)

// host computes values passed without a backend of their own.
var host = cpu.New()

// Apply computes the sigmoid of a dynamically typed value and returns a
// result of the same Go type and shape.
//
// Accepted inputs:
//   - float32, float64, or a named type with one of those underlying types
//   - slices or arrays of those, nested to any depth; nested slices must be
//     rectangular
//   - *tensor.RawTensor of dtype float32 or float64 (computed on the CPU)
//   - *tensor.Tensor[T, B] (computed by its own backend; the result has the
//     same type)
//
// Any other value fails with ErrInvalidInput. Ragged nested slices fail with
// an error matching both ErrInvalidInput and ErrRagged.
//
// Example:
//
//	y, _ := activation.Apply([][]float64{{0, 2}, {-2, 0}})
//	// y.([][]float64) == [[0.5 0.8808] [0.1192 0.5]]
func Apply(x any) (any, error) {
	switch v := x.(type) {
	case nil:
		return nil, fmt.Errorf("%w: <nil>", ErrInvalidInput)
	case float32:
		return Scalar(v), nil
	case float64:
		return Scalar(v), nil
	case *tensor.RawTensor:
		y, err := ApplyRaw(v)
		if err != nil {
			return nil, err
		}
		return y, nil
	case rawer:
		return applyTensor(v)
	}

	rv := reflect.ValueOf(x)
	dtype, err := leafDType(rv.Type())
	if err != nil {
		return nil, err
	}

	shape := detectShape(rv)
	values, err := flatten(rv, shape, 0, make([]float64, 0, shape.NumElements()))
	if err != nil {
		return nil, err
	}

	if len(values) > 0 {
		values, err = compute(values, shape, dtype)
		if err != nil {
			return nil, err
		}
	}

	out, _ := build(rv.Type(), shape, 0, values)
	return out.Interface(), nil
}

// ApplyRaw returns a new CPU tensor holding the sigmoid of x.
// x is not modified.
func ApplyRaw(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.CheckFloat("activation", x); err != nil {
		return nil, err
	}
	return host.Sigmoid(x), nil
}

// rawer is satisfied by every *tensor.Tensor[T, B].
type rawer interface {
	Raw() *tensor.RawTensor
}

// applyTensor validates a typed tensor held in an interface and calls its
// Sigmoid method, so the result keeps the tensor's element and backend types.
func applyTensor(x rawer) (any, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("activation: %w", tensor.ErrNilTensor)
	}
	sigmoid := rv.MethodByName("Sigmoid")
	if !sigmoid.IsValid() || sigmoid.Type().NumIn() != 0 || sigmoid.Type().NumOut() != 1 {
		return nil, fmt.Errorf("%w: %T", ErrInvalidInput, x)
	}
	if err := tensor.CheckFloat("activation", x.Raw()); err != nil {
		return nil, err
	}
	return sigmoid.Call(nil)[0].Interface(), nil
}

func leafDType(t reflect.Type) (tensor.DataType, error) {
	leaf := t
	for leaf.Kind() == reflect.Slice || leaf.Kind() == reflect.Array {
		leaf = leaf.Elem()
	}
	switch leaf.Kind() {
	case reflect.Float32:
		return tensor.Float32, nil
	case reflect.Float64:
		return tensor.Float64, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, t)
	}
}

// detectShape follows the first element at each depth. It stops early at an
// empty dimension, in which case the value holds no elements.
func detectShape(v reflect.Value) tensor.Shape {
	shape := tensor.Shape{}
	for v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		shape = append(shape, v.Len())
		if v.Len() == 0 {
			break
		}
		v = v.Index(0)
	}
	return shape
}

// flatten appends the leaves of v to out in row-major order, checking every
// dimension against shape.
func flatten(v reflect.Value, shape tensor.Shape, depth int, out []float64) ([]float64, error) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return append(out, v.Float()), nil
	}
	if v.Len() != shape[depth] {
		return nil, fmt.Errorf("%w: %w: length %d at depth %d, want %d",
			ErrInvalidInput, ErrRagged, v.Len(), depth, shape[depth])
	}
	var err error
	for i := range v.Len() {
		if out, err = flatten(v.Index(i), shape, depth+1, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// compute runs the values through the host backend at the input precision.
func compute(values []float64, shape tensor.Shape, dtype tensor.DataType) ([]float64, error) {
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case tensor.Float32:
		data := raw.AsFloat32()
		for i, v := range values {
			data[i] = float32(v)
		}
		for i, v := range host.Sigmoid(raw).AsFloat32() {
			values[i] = float64(v)
		}
	case tensor.Float64:
		copy(raw.AsFloat64(), values)
		copy(values, host.Sigmoid(raw).AsFloat64())
	}
	return values, nil
}

// build allocates a new value of type t shaped like shape and fills its
// leaves from values, returning the values not consumed.
func build(t reflect.Type, shape tensor.Shape, depth int, values []float64) (reflect.Value, []float64) {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		var v reflect.Value
		if t.Kind() == reflect.Slice {
			v = reflect.MakeSlice(t, shape[depth], shape[depth])
		} else {
			v = reflect.New(t).Elem()
		}
		for i := range v.Len() {
			var elem reflect.Value
			elem, values = build(t.Elem(), shape, depth+1, values)
			v.Index(i).Set(elem)
		}
		return v, values
	default:
		v := reflect.New(t).Elem()
		v.SetFloat(values[0])
		return v, values[1:]
	}
}
