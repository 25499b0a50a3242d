package recurrence

import (
	"math/big"
	"math/bits"
)

// Fibonacci returns the exact n-th Fibonacci number (F(0)=0, F(1)=1) by
// fast doubling: the bits of n are consumed from the most significant
// down, maintaining the pair (F(k), F(k+1)).
//
// Complexity: O(log n) big-integer multiplications. Without a modulus the
// result itself grows linearly in n; see FibonacciMod for bounded sizes.
func Fibonacci(n uint64) *big.Int {
	f, _ := fibPair(n, nil)

	return f
}

// FibonacciMod returns F(n) mod m, reducing every intermediate value, so
// intermediates never exceed m² and indices around 10¹⁸ stay cheap.
// FibonacciMod(n, m) always equals Fibonacci(n) mod m.
//
// Errors:
//   - ErrBadModulus — m is nil or m < 1.
func FibonacciMod(n uint64, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() < 1 {
		return nil, ErrBadModulus
	}

	f, _ := fibPair(n, m)

	return f, nil
}

// fibPair returns (F(n), F(n+1)), reduced mod m when m != nil.
//
// Doubling identities, applied per bit of n (high to low):
//
//	F(2k)   = F(k) · (2·F(k+1) − F(k))
//	F(2k+1) = F(k)² + F(k+1)²
func fibPair(n uint64, m *big.Int) (*big.Int, *big.Int) {
	a := big.NewInt(0) // F(k)
	b := big.NewInt(1) // F(k+1)
	if n == 0 {
		return a, b
	}

	t := new(big.Int)
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// c = F(2k), d = F(2k+1)
		c := new(big.Int).Lsh(b, 1)
		c.Sub(c, a)
		c.Mul(c, a)
		d := new(big.Int).Mul(a, a)
		d.Add(d, t.Mul(b, b))
		if m != nil {
			c.Mod(c, m) // Mod is Euclidean: c ≥ 0 even when 2b-a < 0 pre-reduction
			d.Mod(d, m)
		}

		if n>>uint(i)&1 == 0 {
			a, b = c, d
		} else {
			c.Add(c, d)
			if m != nil {
				c.Mod(c, m)
			}
			a, b = d, c
		}
	}

	return a, b
}
