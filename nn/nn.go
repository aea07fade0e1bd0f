// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the sigmoid activation as a neural network module.
//
// Example:
//
//	backend := cpu.New()
//	model := nn.NewSequential[float32, *cpu.Backend](
//	    nn.NewSigmoid[float32, *cpu.Backend](),
//	)
//	y := model.Forward(x)
package nn

import (
	"github.com/born-ml/activation/internal/nn"
	"github.com/born-ml/activation/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[T tensor.Float, B tensor.Backend] = nn.Module[T, B]

// Sequential chains modules, feeding each output into the next.
type Sequential[T tensor.Float, B tensor.Backend] = nn.Sequential[T, B]

// NewSequential creates a Sequential container from modules.
func NewSequential[T tensor.Float, B tensor.Backend](modules ...Module[T, B]) *Sequential[T, B] {
	return nn.NewSequential(modules...)
}

// Sigmoid is the element-wise logistic activation module: 1 / (1 + exp(-x)).
type Sigmoid[T tensor.Float, B tensor.Backend] = nn.Sigmoid[T, B]

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[T tensor.Float, B tensor.Backend]() *Sigmoid[T, B] {
	return nn.NewSigmoid[T, B]()
}
