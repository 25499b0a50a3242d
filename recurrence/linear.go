package recurrence

import (
	"math/big"

	"github.com/katalvlaran/mathx/linalg"
)

// Linear evaluates the order-k constant-coefficient recurrence
//
//	a(t) = coeffs[0]·a(t-1) + coeffs[1]·a(t-2) + ... + coeffs[k-1]·a(t-k)
//
// seeded with a(0..k-1) = init, and returns the exact a(n). Indices below
// k come straight from the seed; larger indices are reached by raising the
// k×k companion matrix to the (n-k+1)-th power, so the cost is O(k³ log n)
// big-integer multiplications instead of O(n) additions.
//
// Fibonacci is Linear([1,1], [0,1], n).
//
// Errors:
//   - ErrEmptyRecurrence — len(coeffs) == 0.
//   - ErrLengthMismatch  — len(init) != len(coeffs).
//   - ErrNilTerm         — any nil coefficient or seed entry.
func Linear(coeffs, init []*big.Int, n uint64) (*big.Int, error) {
	return linearImpl(coeffs, init, n, nil)
}

// LinearMod is Linear with every step reduced modulo m, keeping entries
// bounded for huge n. LinearMod(c, i, n, m) equals Linear(c, i, n) mod m
// (with the Euclidean, non-negative convention of big.Int.Mod).
//
// Errors: those of Linear, plus ErrBadModulus for m == nil or m < 1.
func LinearMod(coeffs, init []*big.Int, n uint64, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() < 1 {
		return nil, ErrBadModulus
	}

	return linearImpl(coeffs, init, n, m)
}

// linearImpl validates, then either reads the seed or runs the
// companion-matrix power; m == nil means exact arithmetic.
func linearImpl(coeffs, init []*big.Int, n uint64, m *big.Int) (*big.Int, error) {
	k := len(coeffs)
	if k == 0 {
		return nil, ErrEmptyRecurrence
	}
	if len(init) != k {
		return nil, ErrLengthMismatch
	}
	for i := 0; i < k; i++ {
		if coeffs[i] == nil || init[i] == nil {
			return nil, ErrNilTerm
		}
	}

	if n < uint64(k) {
		out := new(big.Int).Set(init[n])
		if m != nil {
			out.Mod(out, m)
		}

		return out, nil
	}

	// Companion matrix: first row carries the coefficients, the
	// subdiagonal shifts the state window down one step.
	comp := make(linalg.BigMatrix, k)
	for i := range comp {
		comp[i] = make([]*big.Int, k)
		for j := range comp[i] {
			comp[i][j] = new(big.Int)
		}
	}
	for j, c := range coeffs {
		comp[0][j].Set(c)
	}
	for i := 1; i < k; i++ {
		comp[i][i-1].SetInt64(1)
	}

	var (
		pow linalg.BigMatrix
		err error
	)
	steps := n - uint64(k) + 1
	if m == nil {
		pow, err = linalg.Power(comp, steps)
	} else {
		pow, err = linalg.PowerMod(comp, steps, m)
	}
	if err != nil {
		return nil, err
	}

	// State column [a(k-1), a(k-2), ..., a(0)]ᵀ advanced `steps` times;
	// its first entry is a(n).
	state := make(linalg.BigMatrix, k)
	for i := 0; i < k; i++ {
		state[i] = []*big.Int{new(big.Int).Set(init[k-1-i])}
	}
	adv, err := linalg.BigMatMul(pow, state)
	if err != nil {
		return nil, err
	}

	out := adv[0][0]
	if m != nil {
		out.Mod(out, m)
	}

	return out, nil
}
