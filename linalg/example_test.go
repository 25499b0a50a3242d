package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/mathx/linalg"
)

// ExampleDot computes a plain inner product.
func ExampleDot() {
	s, _ := linalg.Dot(linalg.Vector{1, 2, 3}, linalg.Vector{4, 5, 6})
	fmt.Println(s)
	// Output: 32
}

// ExampleTranspose flips a 2×3 matrix.
func ExampleTranspose() {
	tr, _ := linalg.Transpose(linalg.Matrix{{1, 2, 3}, {4, 5, 6}})
	fmt.Println(tr)
	// Output: [[1 4] [2 5] [3 6]]
}

// ExamplePower reads Fibonacci(90) out of the Q-matrix, exactly —
// a float64 matrix power would have lost the low digits around F(79).
func ExamplePower() {
	q := linalg.NewBigMatrix([][]int64{{1, 1}, {1, 0}})
	p, _ := linalg.Power(q, 90)
	fmt.Println(p[0][1])
	// Output: 2880067194370816120
}
