// Package primes provides primality testing, prime sieving and integer
// factorization over int64.
//
// ✨ Key features:
//   - IsPrime — deterministic Miller–Rabin for the whole int64 range
//   - Sieve — ordered primes ≤ n (Eratosthenes)
//   - Primes — the first k primes (geometrically grown sieve bound)
//   - PrimeFactors — lazy ascending prime factors with multiplicity
//   - Factorize — ascending (prime, exponent) pairs, ∏ pᵉ == n
//   - Divisors — every positive divisor, ascending, from the factorization
//
// Lazy sequences are Go iterators (iter.Seq): pure and restartable, so a
// caller may stop after the first factor without computing the rest.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathx/primes"
//
//	for p := range primes.PrimeFactors(1548) {
//	  fmt.Println(p) // 2 2 3 3 43
//	}
//
// All functions are stateless: nothing is cached between calls, so
// concurrent use needs no locking.
//
// Performance:
//   - IsPrime: 12 modular exponentiations worst case, O(log² n) word ops.
//   - Sieve:   O(n log log n) time, O(n) bytes of scratch.
//   - PrimeFactors: trial division up to √n with a Miller–Rabin early exit
//     once the remaining cofactor is prime.
package primes
