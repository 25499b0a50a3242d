package primes

import (
	"iter"
	"sort"
)

// Factor is one prime-power term of a factorization: P^E with P prime
// and E ≥ 1.
type Factor struct {
	P int64 // prime base, ≥ 2
	E int   // exponent, ≥ 1
}

// PrimeFactors returns a lazy ascending sequence of the prime factors of n
// with multiplicity: 12 yields 2, 2, 3. The sequence is finite, pure and
// restartable; ranging may stop early (e.g. only the smallest factor)
// without the remaining factors ever being computed. n ≤ 1 yields nothing.
//
// Factors are found by trial division (2, then odd candidates up to the
// square root of the remaining cofactor), with a Miller–Rabin early exit
// as soon as the cofactor itself is prime.
func PrimeFactors(n int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if n <= 1 {
			return
		}

		m := n
		for m%2 == 0 {
			if !yield(2) {
				return
			}
			m /= 2
		}
		f := int64(3)
		for m > 1 {
			if IsPrime(m) {
				yield(m)

				return
			}
			// m is composite and odd here, so its smallest prime factor
			// is an odd value ≤ √m: the scan below always terminates.
			for m%f != 0 {
				f += 2
			}
			for m%f == 0 {
				if !yield(f) {
					return
				}
				m /= f
			}
		}
	}
}

// Factorize groups the prime factors of n into ascending (prime, exponent)
// pairs. The round-trip invariant holds for every n ≥ 1: the product of
// P^E over all pairs reconstructs n exactly (Factorize(1) is empty, the
// empty product).
//
// Errors:
//   - ErrNonPositive — n < 1.
func Factorize(n int64) ([]Factor, error) {
	if n < 1 {
		return nil, ErrNonPositive
	}

	out := []Factor{}
	for p := range PrimeFactors(n) {
		if k := len(out); k > 0 && out[k-1].P == p {
			out[k-1].E++

			continue
		}
		out = append(out, Factor{P: p, E: 1})
	}

	return out, nil
}

// Divisors returns every positive divisor of n in ascending order,
// expanded from the factorization as the Cartesian product of the
// exponent ranges. Always contains 1 and n.
//
// Errors:
//   - ErrNonPositive — n < 1.
func Divisors(n int64) ([]int64, error) {
	fs, err := Factorize(n)
	if err != nil {
		return nil, err
	}

	divs := []int64{1}
	for _, f := range fs {
		grown := make([]int64, 0, len(divs)*(f.E+1))
		pe := int64(1)
		for e := 0; e <= f.E; e++ {
			for _, d := range divs {
				grown = append(grown, d*pe)
			}
			pe *= f.P
		}
		divs = grown
	}
	sort.Slice(divs, func(i, j int) bool { return divs[i] < divs[j] })

	return divs, nil
}
