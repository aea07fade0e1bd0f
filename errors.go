// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import "errors"

var (
	// ErrInvalidInput is returned when the input is not a number, a
	// rectangular nested slice of numbers, or a float tensor.
	ErrInvalidInput = errors.New("activation: invalid input type")

	// ErrRagged is returned when nested slices have differing lengths at the same depth.
	ErrRagged = errors.New("activation: ragged nested slice")
)
