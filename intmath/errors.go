// SPDX-License-Identifier: MIT
// Package intmath: sentinel error set.
// All functions return these sentinels on invalid input; tests and callers
// match them via errors.Is. No function panics on user-triggered conditions.

package intmath

import "errors"

var (
	// ErrNegative is returned when a non-negative integer is required
	// (ISqrt, Digits) but a negative value was supplied.
	ErrNegative = errors.New("intmath: negative input")

	// ErrBadBase is returned by Digits/FromDigits when base < 2.
	ErrBadBase = errors.New("intmath: base must be >= 2")

	// ErrBadDigit is returned by FromDigits when a digit is negative or
	// not strictly below the base.
	ErrBadDigit = errors.New("intmath: digit out of range for base")

	// ErrBothZero is returned by XGCD when both arguments are zero:
	// gcd(0,0) has no Bézout decomposition convention here.
	ErrBothZero = errors.New("intmath: gcd(0,0) has no extended form")

	// ErrNoArguments is returned by the variadic reductions (GCDAll, LCMAll)
	// when called with an empty argument list. At least one value is a
	// documented precondition; no identity element is assumed.
	ErrNoArguments = errors.New("intmath: at least one argument required")

	// ErrOverflow is returned when the exact mathematical result does not
	// fit in an int64. Results are never silently truncated.
	ErrOverflow = errors.New("intmath: result overflows int64")
)
