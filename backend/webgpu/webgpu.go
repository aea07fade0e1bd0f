//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated activations.
//
// float32 tensors run as WGSL compute shaders; float64 tensors are computed
// on the CPU because WGSL has no 64-bit float type.
//
// Example:
//
//	import (
//	    "github.com/born-ml/activation/backend/webgpu"
//	    "github.com/born-ml/activation/tensor"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    x := tensor.Randn[float32](tensor.Shape{1024, 1024}, gpu)
//	    y := x.Sigmoid()
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/activation/internal/backend/webgpu"
	"github.com/born-ml/activation/tensor"
)

// Backend represents the WebGPU backend implementation for GPU-accelerated
// tensor operations.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend
// ready for tensor operations. Call Release() when done to free GPU resources.
//
// Returns an error wrapping tensor.ErrDeviceUnavailable if WebGPU
// initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    y := activation.Sigmoid(x) // x created on gpu
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
