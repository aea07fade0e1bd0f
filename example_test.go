// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation_test

import (
	"fmt"

	"github.com/born-ml/activation"
	"github.com/born-ml/activation/backend/cpu"
	"github.com/born-ml/activation/tensor"
)

func ExampleActivation() {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{0, 2, -2}, tensor.Shape{3}, backend)

	y, err := activation.Activation(x)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range y.Data() {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// 0.5000
	// 0.8808
	// 0.1192
}

func ExampleScalar() {
	fmt.Println(activation.Scalar(0.0))
	fmt.Println(activation.Scalar(-1000.0))
	// Output:
	// 0.5
	// 0
}

func ExampleApply() {
	y, _ := activation.Apply([][]float64{{0}, {1000}})
	fmt.Println(y)

	_, err := activation.Apply("x")
	fmt.Println(err)
	// Output:
	// [[0.5] [1]]
	// activation: invalid input type: string
}
