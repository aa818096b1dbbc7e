// SPDX-License-Identifier: MIT
package ops_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinal/matrix"
	"github.com/katalvlaran/lvlinal/matrix/ops"
)

// ExampleRREF reduces an invertible 2×2 matrix to the identity.
func ExampleRREF() {
	m, _ := matrix.NewDense([][]float64{{2, 4}, {1, 3}})
	r, _ := ops.RREF(m)
	fmt.Println(r)
	// Output:
	// [1 0]
	// [0 1]
}

// ExampleRank counts independent rows.
func ExampleRank() {
	m, _ := matrix.NewDense([][]float64{{1, 2}, {2, 4}})
	rank, _ := ops.Rank(m)
	fmt.Println(rank)
	// Output:
	// 1
}

// ExampleSolve solves a 2×2 system and rounds for display.
func ExampleSolve() {
	a, _ := matrix.NewDense([][]float64{{2, 1}, {1, 3}})
	b, _ := matrix.NewVector([]float64{3, 5})
	x, _ := ops.Solve(a, b)
	for _, xi := range x.Components() {
		fmt.Printf("%.2f\n", xi)
	}
	// Output:
	// 0.80
	// 1.40
}

// ExampleInverse shows the sentinel for a singular input.
func ExampleInverse() {
	m, _ := matrix.NewDense([][]float64{{1, 2}, {2, 4}})
	_, err := ops.Inverse(m)
	fmt.Println(err)
	// Output:
	// Inverse: rank 1 < 2: matrix: singular matrix
}
