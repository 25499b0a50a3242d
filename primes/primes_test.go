package primes_test

import (
	"testing"

	"github.com/katalvlaran/mathx/primes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// first25 are the primes below 100, the calibration set for Sieve/Primes.
var first25 = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43,
	47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// TestIsPrime_Small sweeps IsPrime against a naive reference below 2000.
func TestIsPrime_Small(t *testing.T) {
	naive := func(n int64) bool {
		if n < 2 {
			return false
		}
		for d := int64(2); d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}

		return true
	}
	for n := int64(-5); n < 2000; n++ {
		assert.Equal(t, naive(n), primes.IsPrime(n), "IsPrime(%d)", n)
	}
}

// TestIsPrime_Large pins known large primes and composites, including
// strong-pseudoprime traps for small witness sets.
func TestIsPrime_Large(t *testing.T) {
	primesList := []int64{
		2147483647,          // 2³¹-1, Mersenne
		67280421310721,      // factor of 2⁶⁴+1
		9223372036854775783, // largest int64 prime
	}
	for _, p := range primesList {
		assert.True(t, primes.IsPrime(p), "%d is prime", p)
	}

	composites := []int64{
		3215031751,          // strong pseudoprime to bases 2,3,5,7
		3825123056546413051, // strong pseudoprime to bases 2..23
		2147483647 * 2,
		9223372036854775807, // 2⁶³-1 = 7·7²·73·127·337·5419·92737·649657
	}
	for _, c := range composites {
		assert.False(t, primes.IsPrime(c), "%d is composite", c)
	}
}

// TestSieve covers bounds, ordering and the negative-bound guard.
func TestSieve(t *testing.T) {
	_, err := primes.Sieve(-1)
	assert.ErrorIs(t, err, primes.ErrNegativeBound, "negative bound must error")

	for _, n := range []int64{0, 1} {
		ps, err := primes.Sieve(n)
		require.NoError(t, err)
		assert.Empty(t, ps, "no primes ≤ %d", n)
	}

	ps, err := primes.Sieve(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ps, "Sieve(2)")

	ps, err = primes.Sieve(100)
	require.NoError(t, err)
	assert.Equal(t, first25, ps, "primes below 100")

	ps, err = primes.Sieve(97)
	require.NoError(t, err)
	assert.Equal(t, first25, ps, "inclusive upper bound: 97 is kept")
}

// TestSieve_Restartable verifies two calls are independent and equal.
func TestSieve_Restartable(t *testing.T) {
	a, err := primes.Sieve(1000)
	require.NoError(t, err)
	b, err := primes.Sieve(1000)
	require.NoError(t, err)
	assert.Equal(t, a, b, "Sieve must be pure across calls")
	assert.Len(t, a, 168, "π(1000) == 168")
}

// TestPrimes covers the first-k contract and its guards.
func TestPrimes(t *testing.T) {
	_, err := primes.Primes(-1)
	assert.ErrorIs(t, err, primes.ErrNegativeCount, "negative count must error")

	ps, err := primes.Primes(0)
	require.NoError(t, err)
	assert.Empty(t, ps, "zero primes requested")

	ps, err = primes.Primes(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ps, "first prime")

	ps, err = primes.Primes(25)
	require.NoError(t, err)
	assert.Equal(t, first25, ps, "first 25 primes")

	ps, err = primes.Primes(10001)
	require.NoError(t, err)
	assert.Len(t, ps, 10001)
	assert.Equal(t, int64(104743), ps[10000], "the 10001st prime")
}

// TestPrimeFactors_Known pins factor streams with multiplicity.
func TestPrimeFactors_Known(t *testing.T) {
	collect := func(n int64) []int64 {
		out := []int64{}
		for p := range primes.PrimeFactors(n) {
			out = append(out, p)
		}

		return out
	}

	assert.Empty(t, collect(-4), "negative input yields nothing")
	assert.Empty(t, collect(0), "zero yields nothing")
	assert.Empty(t, collect(1), "one yields nothing")
	assert.Equal(t, []int64{2, 2, 3}, collect(12), "12 = 2·2·3")
	assert.Equal(t, []int64{2, 2, 3, 3, 43}, collect(1548), "1548 = 2²·3²·43")
	assert.Equal(t, []int64{97}, collect(97), "a prime is its own stream")
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13}, collect(30030), "primorial 30030")
	assert.Equal(t, []int64{104729, 104729}, collect(104729*104729),
		"square of a large prime")
}

// TestPrimeFactors_EarlyStop verifies lazy partial consumption: taking
// only the first factor must not force the rest of the stream.
func TestPrimeFactors_EarlyStop(t *testing.T) {
	var first int64
	for p := range primes.PrimeFactors(2 * 104729 * 104729) {
		first = p

		break
	}
	assert.Equal(t, int64(2), first, "smallest factor comes first")
}

// TestPrimeFactors_Restartable verifies ranging twice gives the same stream.
func TestPrimeFactors_Restartable(t *testing.T) {
	seq := primes.PrimeFactors(360)
	runs := make([][]int64, 2)
	for i := range runs {
		for p := range seq {
			runs[i] = append(runs[i], p)
		}
	}
	assert.Equal(t, runs[0], runs[1], "sequence must be restartable")
	assert.Equal(t, []int64{2, 2, 2, 3, 3, 5}, runs[0], "360 = 2³·3²·5")
}

// TestFactorize covers grouping, ordering and the round-trip invariant.
func TestFactorize(t *testing.T) {
	_, err := primes.Factorize(0)
	assert.ErrorIs(t, err, primes.ErrNonPositive, "zero must error")
	_, err = primes.Factorize(-12)
	assert.ErrorIs(t, err, primes.ErrNonPositive, "negative must error")

	fs, err := primes.Factorize(1)
	require.NoError(t, err)
	assert.Empty(t, fs, "Factorize(1) is the empty product")

	fs, err = primes.Factorize(1548)
	require.NoError(t, err)
	assert.Equal(t, []primes.Factor{{P: 2, E: 2}, {P: 3, E: 2}, {P: 43, E: 1}}, fs,
		"1548 = 2²·3²·43")

	// Round-trip ∏ P^E == n over a sweep.
	for n := int64(2); n <= 3000; n++ {
		fs, err := primes.Factorize(n)
		require.NoError(t, err, "Factorize(%d)", n)

		prod := int64(1)
		last := int64(1)
		for _, f := range fs {
			assert.Greater(t, f.P, last, "primes strictly ascending for n=%d", n)
			assert.True(t, primes.IsPrime(f.P), "base %d must be prime for n=%d", f.P, n)
			assert.GreaterOrEqual(t, f.E, 1, "exponent ≥ 1 for n=%d", n)
			last = f.P
			for e := 0; e < f.E; e++ {
				prod *= f.P
			}
		}
		assert.Equal(t, n, prod, "round-trip for n=%d", n)
	}
}

// TestDivisors pins the calibration value and the 1/n membership invariant.
func TestDivisors(t *testing.T) {
	_, err := primes.Divisors(0)
	assert.ErrorIs(t, err, primes.ErrNonPositive, "zero must error")

	ds, err := primes.Divisors(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ds, "1 divides only itself")

	ds, err = primes.Divisors(1548)
	require.NoError(t, err)
	assert.Equal(t, []int64{
		1, 2, 3, 4, 6, 9, 12, 18, 36, 43, 86, 129, 172, 258, 387, 516, 774, 1548,
	}, ds, "all 18 divisors of 1548, ascending")

	ds, err = primes.Divisors(97)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 97}, ds, "a prime has exactly two divisors")

	// Membership + divisibility sweep.
	for n := int64(1); n <= 500; n++ {
		ds, err := primes.Divisors(n)
		require.NoError(t, err, "Divisors(%d)", n)
		assert.Equal(t, int64(1), ds[0], "smallest divisor of %d", n)
		assert.Equal(t, n, ds[len(ds)-1], "largest divisor of %d", n)
		for _, d := range ds {
			assert.Zero(t, n%d, "%d must divide %d", d, n)
		}
	}
}
