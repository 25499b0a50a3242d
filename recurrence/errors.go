// Package recurrence: sentinel error set, matched via errors.Is.
package recurrence

import "errors"

var (
	// ErrBadModulus is returned for a nil or non-positive modulus.
	ErrBadModulus = errors.New("recurrence: modulus must be >= 1")

	// ErrEmptyRecurrence is returned by Linear for an order-zero
	// (empty coefficient) recurrence.
	ErrEmptyRecurrence = errors.New("recurrence: at least one coefficient required")

	// ErrLengthMismatch is returned by Linear when the seed vector length
	// differs from the recurrence order.
	ErrLengthMismatch = errors.New("recurrence: len(init) must equal len(coeffs)")

	// ErrNilTerm is returned when a coefficient or seed entry is nil.
	ErrNilTerm = errors.New("recurrence: nil *big.Int term")
)
