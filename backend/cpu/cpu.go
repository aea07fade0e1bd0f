// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// Kernels support float32 (via github.com/chewxy/math32) and float64 (via
// math). Tensors larger than Config.MinChunkSize elements are split across
// goroutines; each worker writes a disjoint range of a freshly allocated output.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu

import (
	internalcpu "github.com/born-ml/activation/internal/backend/cpu"
	"github.com/born-ml/activation/internal/parallel"
	"github.com/born-ml/activation/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Config controls how kernels split work across goroutines.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend using DefaultConfig.
//
// Example:
//
//	import (
//	    "github.com/born-ml/activation/backend/cpu"
//	    "github.com/born-ml/activation/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
//
// Example:
//
//	cfg := cpu.DefaultConfig()
//	cfg.NumWorkers = 2
//	backend := cpu.NewWithConfig(cfg)
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns settings using every CPU once tensors are large enough.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// SequentialConfig returns settings that run every kernel on the calling goroutine.
func SequentialConfig() Config {
	return parallel.Sequential()
}
