package linalg

import "math/big"

// BigMatrix is a row-major rectangular matrix of arbitrary-precision
// integers. It exists so that matrix exponentiation stays exact for powers
// where fixed-width element types silently overflow.
type BigMatrix [][]*big.Int

// NewBigMatrix builds a BigMatrix from int64 rows. The input is copied;
// later mutation of rows does not affect the result.
func NewBigMatrix(rows [][]int64) BigMatrix {
	out := make(BigMatrix, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Int, len(row))
		for j, v := range row {
			out[i][j] = big.NewInt(v)
		}
	}

	return out
}

// BigIdentity returns the n×n identity matrix. n < 1 yields ErrEmpty.
func BigIdentity(n int) (BigMatrix, error) {
	if n < 1 {
		return nil, ErrEmpty
	}

	out := make(BigMatrix, n)
	for i := range out {
		out[i] = make([]*big.Int, n)
		for j := range out[i] {
			out[i][j] = big.NewInt(0)
		}
		out[i][i].SetInt64(1)
	}

	return out, nil
}

// bigShape mirrors shape for BigMatrix operands.
func bigShape(m BigMatrix) (int, int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, ErrEmpty
	}
	cols := len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return 0, 0, ErrRagged
		}
	}

	return len(m), cols, nil
}

// BigMatMul returns the exact matrix product a·b. Operands are never
// mutated; every result entry is freshly allocated.
//
// Errors:
//   - ErrEmpty, ErrRagged  — shape violations of either operand.
//   - ErrDimensionMismatch — cols(a) != rows(b).
func BigMatMul(a, b BigMatrix) (BigMatrix, error) {
	ar, ac, err := bigShape(a)
	if err != nil {
		return nil, err
	}
	br, bc, err := bigShape(b)
	if err != nil {
		return nil, err
	}
	if ac != br {
		return nil, ErrDimensionMismatch
	}

	tmp := new(big.Int)
	out := make(BigMatrix, ar)
	for i := 0; i < ar; i++ {
		out[i] = make([]*big.Int, bc)
		for j := 0; j < bc; j++ {
			s := new(big.Int)
			for k := 0; k < ac; k++ {
				s.Add(s, tmp.Mul(a[i][k], b[k][j]))
			}
			out[i][j] = s
		}
	}

	return out, nil
}

// Power computes m^p for a square matrix by repeated squaring, entirely in
// arbitrary precision: the result is exact for any p, however large the
// entries grow. p == 0 returns the identity of matching dimension.
//
// Errors:
//   - ErrEmpty, ErrRagged — shape violations.
//   - ErrNonSquare        — rows(m) != cols(m).
//
// Complexity: O(log p) matrix multiplications.
func Power(m BigMatrix, p uint64) (BigMatrix, error) {
	return powerImpl(m, p, nil)
}

// PowerMod computes m^p with every entry reduced modulo mod at each
// squaring step, keeping intermediate entries bounded for huge p.
//
// Errors: those of Power, plus ErrBadModulus for mod == nil or mod < 1.
func PowerMod(m BigMatrix, p uint64, mod *big.Int) (BigMatrix, error) {
	if mod == nil || mod.Sign() < 1 {
		return nil, ErrBadModulus
	}

	return powerImpl(m, p, mod)
}

// powerImpl is the shared square-and-multiply loop; mod == nil means exact.
func powerImpl(m BigMatrix, p uint64, mod *big.Int) (BigMatrix, error) {
	rows, cols, err := bigShape(m)
	if err != nil {
		return nil, err
	}
	if rows != cols {
		return nil, ErrNonSquare
	}

	result, err := BigIdentity(rows)
	if err != nil {
		return nil, err
	}
	base := reduceCopy(m, mod)
	for p > 0 {
		if p&1 == 1 {
			if result, err = BigMatMul(result, base); err != nil {
				return nil, err
			}
			reduceInPlace(result, mod)
		}
		p >>= 1
		if p == 0 {
			break // skip the final unused squaring
		}
		if base, err = BigMatMul(base, base); err != nil {
			return nil, err
		}
		reduceInPlace(base, mod)
	}

	return result, nil
}

// reduceCopy returns a deep copy of m, reduced mod mod when mod != nil.
func reduceCopy(m BigMatrix, mod *big.Int) BigMatrix {
	out := make(BigMatrix, len(m))
	for i, row := range m {
		out[i] = make([]*big.Int, len(row))
		for j, v := range row {
			e := new(big.Int).Set(v)
			if mod != nil {
				e.Mod(e, mod)
			}
			out[i][j] = e
		}
	}

	return out
}

// reduceInPlace reduces every entry mod mod; no-op when mod == nil.
func reduceInPlace(m BigMatrix, mod *big.Int) {
	if mod == nil {
		return
	}
	for _, row := range m {
		for _, v := range row {
			v.Mod(v, mod)
		}
	}
}
