// Package mathx is a toolbox of small, self-contained scientific and
// number-theory helpers — each one a pure function you can call in
// isolation, with no shared state anywhere in the library.
//
// 🚀 What is mathx?
//
//	A collection of the numeric building blocks that keep reappearing in
//	technical code:
//		• Integer primitives: sign, integer square root, base conversion
//		• GCD layer: gcd (plain, variadic, extended/Bézout), lcm
//		• Primes: deterministic Miller–Rabin, sieve, lazy factor streams,
//		  factorization, divisor enumeration
//		• Recurrences: Fibonacci by fast doubling (optionally modular),
//		  general linear recurrences via companion matrices
//		• Linear algebra: dot/matrix products, transpose, and exact
//		  *big.Int matrix exponentiation that never overflows
//		• Polynomials: quadratic solver (real or complex), light
//		  polynomial arithmetic with parsing and printing
//		• Distances: Levenshtein edit distance and its set-based variant
//		• Statistics: mean, variance, one-pass summaries, least squares
//
// ✨ Why choose mathx?
//
//   - Exactness first – arbitrary-precision paths where fixed-width
//     arithmetic would silently wrap (matrix powers, huge Fibonacci)
//   - Fail-fast errors – sentinel errors via errors.Is, never panics
//   - Pure functions – no caches, no locks, safe from any goroutine
//   - Lazy where it pays – factor streams are restartable iterators,
//     consumable one element at a time
//
// Everything is organized in small focused subpackages:
//
//	editdist/   — Levenshtein and set distances
//	intmath/    — integer primitives and the GCD/LCM layer
//	linalg/     — vectors, matrices, exact matrix power
//	polynomial/ — quadratic solver and polynomial arithmetic
//	primes/     — primality, sieving, factorization
//	recurrence/ — Fibonacci and linear recurrences
//	stats/      — descriptive statistics
//
// Quick taste:
//
//	f, _ := recurrence.FibonacciMod(1e18, big.NewInt(1_000_000_007))
//	// F(10¹⁸) mod 1e9+7 in a few microseconds
//
// Dive into the per-package docs for algorithms, complexity notes and
// runnable examples.
package mathx
