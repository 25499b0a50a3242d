// Package polynomial: sentinel error set, matched via errors.Is.
package polynomial

import "errors"

var (
	// ErrZeroLeadingCoeff is returned by Quad/QuadComplex when a == 0:
	// the equation is linear and the caller must be told explicitly.
	ErrZeroLeadingCoeff = errors.New("polynomial: leading coefficient is zero")

	// ErrNegativePower is returned by Pow for a negative exponent.
	ErrNegativePower = errors.New("polynomial: negative power")

	// ErrParse is returned by Parse for text that is not a polynomial in x.
	ErrParse = errors.New("polynomial: cannot parse expression")
)
