package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/mathx/polynomial"
)

// ExampleQuad solves the calibration quadratic, larger root first.
func ExampleQuad() {
	x1, x2, err := polynomial.Quad(1, 3, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x1, x2)
	// Output: -1 -2
}

// ExampleQuadComplex returns the conjugate pair for a negative discriminant.
func ExampleQuadComplex() {
	x1, x2, _ := polynomial.QuadComplex(1, 2, 3)
	fmt.Printf("%.4f %.4f\n", x1, x2)
	// Output: (-1.0000+1.4142i) (-1.0000-1.4142i)
}

// ExampleParse builds a polynomial from text and evaluates it.
func ExampleParse() {
	p, _ := polynomial.Parse("x^2 + 2x + 1")
	fmt.Println(p, "at 3 =", p.Eval(3))
	// Output: x^2 + 2x + 1 at 3 = 16
}
