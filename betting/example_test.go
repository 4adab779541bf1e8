// SPDX-License-Identifier: MIT

package betting_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/confseq/betting"
)

// ExampleCS runs the betting confidence sequence on a bounded stream.
func ExampleCS() {
	x := make([]float64, 200)
	for i := range x {
		x[i] = float64((i+1)*37%101) / 100
	}

	opts := betting.DefaultOptions()
	opts.Breaks = 100
	l, u, err := betting.CS(context.Background(), x, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("t=200: [%.2f, %.2f]\n", l[199], u[199])
	// Output:
	// t=200: [0.43, 0.57]
}

// ExampleLogicalCS shows what sampling without replacement implies on its own.
func ExampleLogicalCS() {
	l, u, _ := betting.LogicalCS([]float64{1, 0, 1}, 4)
	fmt.Println(l, u)
	// Output:
	// [0.25 0.25 0.5] [1 0.75 0.75]
}
