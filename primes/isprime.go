package primes

import "math/bits"

// mrWitnesses is the fixed Miller–Rabin witness set {2,...,37}. Testing
// against these twelve bases is a proven deterministic primality check for
// every n < 3.3·10²⁴, which covers the whole int64 range.
var mrWitnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// trialCutoff bounds the small-prime fast path in IsPrime.
const trialCutoff = 37 * 37

// IsPrime reports whether n is prime. The result is exact over the whole
// int64 range: small n fall to trial division, larger n to Miller–Rabin
// with the fixed witness set {2..37} (deterministic below 3.3·10²⁴).
//
// n < 2 is never prime.
//
// Complexity: O(log² n) word operations (12 modular exponentiations).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}

	// Small range: divide by the witness primes themselves.
	for _, p := range mrWitnesses {
		sp := int64(p)
		if n == sp {
			return true
		}
		if n%sp == 0 {
			return false
		}
	}
	if n < trialCutoff {
		return true // no prime factor ≤ 37, and n < 37²
	}

	return millerRabin(uint64(n))
}

// millerRabin runs the strong-probable-prime test for every fixed witness.
// n must be odd, > 37 and coprime to all witnesses (guaranteed by IsPrime).
func millerRabin(n uint64) bool {
	// Write n-1 = d·2^s with d odd.
	d := n - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, a := range mrWitnesses {
		x := powMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = mulMod(x, x, n)
			if x == n-1 {
				composite = false

				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// mulMod returns a*b mod m without overflow, using the 128-bit product
// from math/bits. Requires a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)

	return rem
}

// powMod returns base^exp mod m by binary exponentiation. Requires m > 1.
func powMod(base, exp, m uint64) uint64 {
	base %= m
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}

	return result
}
