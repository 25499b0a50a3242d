package primes

import "math"

// Sieve returns the ordered slice of all primes ≤ n, computed with a fresh
// sieve of Eratosthenes on every call (no state is shared between calls).
// Bounds below 2 yield an empty slice; negative bounds are a domain error.
//
// Errors:
//   - ErrNegativeBound — n < 0.
//
// Complexity: O(n log log n) time, O(n) bytes of scratch.
func Sieve(n int64) ([]int64, error) {
	if n < 0 {
		return nil, ErrNegativeBound
	}
	if n < 2 {
		return []int64{}, nil
	}

	composite := make([]bool, n+1)
	for p := int64(2); p*p <= n; p++ {
		if composite[p] {
			continue
		}
		for q := p * p; q <= n; q += p {
			composite[q] = true
		}
	}

	out := make([]int64, 0, primeCountEstimate(n))
	for p := int64(2); p <= n; p++ {
		if !composite[p] {
			out = append(out, p)
		}
	}

	return out, nil
}

// Primes returns the first k primes. The sieve bound starts at a
// prime-counting estimate and grows geometrically until k primes are
// found, so any k completes without a precomputed table.
//
// Errors:
//   - ErrNegativeCount — k < 0.
func Primes(k int) ([]int64, error) {
	if k < 0 {
		return nil, ErrNegativeCount
	}
	if k == 0 {
		return []int64{}, nil
	}

	bound := nthPrimeEstimate(k)
	for {
		ps, err := Sieve(bound)
		if err != nil {
			return nil, err
		}
		if len(ps) >= k {
			return ps[:k:k], nil
		}
		bound *= 2
	}
}

// primeCountEstimate approximates π(n) for output pre-allocation only;
// it may under- or over-shoot without affecting correctness.
func primeCountEstimate(n int64) int64 {
	if n < 10 {
		return 4
	}

	return int64(float64(n)/(math.Log(float64(n))-1)) + 1
}

// nthPrimeEstimate upper-bounds the k-th prime: p_k < k(ln k + ln ln k)
// for k ≥ 6 (Rosser), with a fixed floor for the small cases.
func nthPrimeEstimate(k int) int64 {
	if k < 6 {
		return 13
	}
	fk := float64(k)
	ln := math.Log(fk)

	return int64(fk*(ln+math.Log(ln))) + 1
}
