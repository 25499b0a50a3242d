// SPDX-License-Identifier: MIT
// Package primes: sentinel error set, matched via errors.Is.

package primes

import "errors"

var (
	// ErrNegativeBound is returned by Sieve for a negative upper bound.
	ErrNegativeBound = errors.New("primes: sieve bound must be non-negative")

	// ErrNegativeCount is returned by Primes for a negative prime count.
	ErrNegativeCount = errors.New("primes: prime count must be non-negative")

	// ErrNonPositive is returned by Factorize and Divisors for n < 1;
	// factorization is defined on positive integers only.
	ErrNonPositive = errors.New("primes: input must be positive")
)
