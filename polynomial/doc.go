// Package polynomial provides the quadratic root solver and light
// single-variable polynomial arithmetic.
//
// ✨ Key features:
//   - Quad / QuadComplex — roots of a·x² + b·x + c, real or complex
//   - Polynomial — coefficient-slice type (ascending powers) with Eval,
//     Add, Sub, Mul, Pow, Derivative, Integral and a human-readable String
//   - Parse — the simple "7x^2 + 6x - 5" text form, overlapping terms
//     allowed ("3x + x^2 - x" parses to x^2 + 2x)
//
// Root policy:
//
//	Quad returns the two real roots larger-first (Quad(1,3,2) is -1, -2).
//	A negative discriminant is a valid input, not an error: Quad then
//	returns the documented sentinel pair (NaN, NaN). Callers who need the
//	complex conjugate pair use QuadComplex. A zero leading coefficient is
//	a domain error (the equation degenerates to a linear one) and is
//	reported as ErrZeroLeadingCoeff instead of dividing by zero.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathx/polynomial"
//
//	x1, x2, err := polynomial.Quad(1, 3, 2) // -1, -2
//	p, err := polynomial.Parse("x^2 + 2x + 1")
//	y := p.Eval(3)                          // 16
//
// Polynomial values are immutable by convention: every operation returns
// a fresh slice and never mutates a receiver or argument.
package polynomial
