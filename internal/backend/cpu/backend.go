// Package cpu implements the CPU backend: pure Go element-wise kernels that
// fan out across goroutines for large tensors.
package cpu

import (
	"fmt"

	"github.com/born-ml/activation/internal/parallel"
	"github.com/born-ml/activation/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
	cfg    parallel.Config
}

// New creates a new CPU backend with parallel.DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		cfg:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Config returns the parallelism settings in use.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.cfg
}

// unary allocates a result shaped like x and runs the dtype-specific kernel
// over it in parallel chunks. Panics on non-float dtypes.
func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, f32 func(dst, src []float32), f64 func(dst, src []float64)) *tensor.RawTensor {
	if err := tensor.CheckFloat(op, x); err != nil {
		panic(err.Error())
	}
	result := tensor.NewRawLike(x, cpu.device)

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		parallel.ForRange(len(src), func(s, e int) { f32(dst[s:e], src[s:e]) }, cpu.cfg)
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		parallel.ForRange(len(src), func(s, e int) { f64(dst[s:e], src[s:e]) }, cpu.cfg)
	}
	return result
}

// binary is the two-operand counterpart of unary. Shapes and dtypes must match.
func (cpu *CPUBackend) binary(op string, a, b *tensor.RawTensor, f32 func(dst, a, b []float32), f64 func(dst, a, b []float64)) *tensor.RawTensor {
	if err := tensor.CheckFloat(op, a); err != nil {
		panic(err.Error())
	}
	if b == nil {
		panic(fmt.Sprintf("%s: %v", op, tensor.ErrNilTensor))
	}
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: %v: %v vs %v", op, tensor.ErrShapeMismatch, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}
	result := tensor.NewRawLike(a, cpu.device)

	switch a.DType() {
	case tensor.Float32:
		av, bv, dst := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
		parallel.ForRange(len(dst), func(s, e int) { f32(dst[s:e], av[s:e], bv[s:e]) }, cpu.cfg)
	case tensor.Float64:
		av, bv, dst := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
		parallel.ForRange(len(dst), func(s, e int) { f64(dst[s:e], av[s:e], bv[s:e]) }, cpu.cfg)
	}
	return result
}
