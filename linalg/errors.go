// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set (fail-fast, matched via errors.Is).
// All validation happens before any allocation; no function panics on
// user-triggered conditions.

package linalg

import "errors"

var (
	// ErrEmpty is returned when a vector or matrix has no elements.
	ErrEmpty = errors.New("linalg: empty operand")

	// ErrRagged is returned when matrix rows have unequal lengths.
	ErrRagged = errors.New("linalg: ragged matrix rows")

	// ErrDimensionMismatch is returned when operand shapes are
	// incompatible (Dot length mismatch, MatVec/MatMul inner dimension).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare is returned by Power/PowerMod for non-square input.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrBadModulus is returned by PowerMod for a nil or non-positive modulus.
	ErrBadModulus = errors.New("linalg: modulus must be >= 1")
)
