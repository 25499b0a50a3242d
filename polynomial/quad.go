package polynomial

import (
	"math"
	"math/cmplx"
)

// Quad solves a·x² + b·x + c = 0 over the reals and returns the two roots
// larger-first, equal for a zero discriminant: Quad(1, 3, 2) is (-1, -2).
//
// A negative discriminant is not an error — the documented sentinel pair
// (NaN, NaN) is returned; use QuadComplex for the conjugate roots.
//
// Errors:
//   - ErrZeroLeadingCoeff — a == 0 (the equation is linear, not quadratic).
func Quad(a, b, c float64) (x1, x2 float64, err error) {
	if a == 0 {
		return 0, 0, ErrZeroLeadingCoeff
	}

	d := b*b - 4*a*c
	if d < 0 {
		return math.NaN(), math.NaN(), nil
	}

	sd := math.Sqrt(d)
	x1 = (-b + sd) / (2 * a)
	x2 = (-b - sd) / (2 * a)
	if x1 < x2 { // a < 0 flips the ± ordering
		x1, x2 = x2, x1
	}

	return x1, x2, nil
}

// QuadComplex solves a·x² + b·x + c = 0 over the complex numbers. For a
// negative discriminant it returns the conjugate pair with the positive
// imaginary part first: QuadComplex(1, 2, 3) is (-1+√2i, -1-√2i).
//
// Errors:
//   - ErrZeroLeadingCoeff — a == 0.
func QuadComplex(a, b, c float64) (x1, x2 complex128, err error) {
	if a == 0 {
		return 0, 0, ErrZeroLeadingCoeff
	}

	sd := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)
	x1 = (complex(-b, 0) + sd) / den
	x2 = (complex(-b, 0) - sd) / den
	if imag(x1) < imag(x2) || (imag(x1) == imag(x2) && real(x1) < real(x2)) {
		x1, x2 = x2, x1
	}

	return x1, x2, nil
}
