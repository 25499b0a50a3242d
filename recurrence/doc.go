// Package recurrence evaluates integer linear recurrences in O(log n):
// Fibonacci numbers by fast doubling, and arbitrary constant-coefficient
// recurrences by companion-matrix exponentiation.
//
// ✨ Key features:
//   - Fibonacci — exact F(n) as *big.Int, fast doubling
//   - FibonacciMod — F(n) mod m with bounded intermediates, so indices
//     like 10¹⁸ complete in microseconds
//   - Linear / LinearMod — any recurrence a(t) = Σ cᵢ·a(t-1-i) from its
//     coefficient and seed vectors
//
// 🚀 Why fast doubling?
//
//	Iterating F(n) costs n big-integer additions. Fast doubling uses the
//	identities F(2k) = F(k)·(2F(k+1)−F(k)) and F(2k+1) = F(k)²+F(k+1)²
//	to reach index n in O(log n) multiplications — and with a modulus
//	every intermediate stays below m², no matter how large n is.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathx/recurrence"
//
//	f := recurrence.Fibonacci(90)                           // exact
//	r, err := recurrence.FibonacciMod(1e18, big.NewInt(1e9+7)) // bounded
//
// All results are freshly allocated; inputs are never mutated. Without a
// modulus the result size is the caller's responsibility (F(n) has about
// 0.209·n digits).
package recurrence
