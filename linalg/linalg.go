package linalg

// Vector is an ordered sequence of float64 values of fixed length.
type Vector []float64

// Matrix is a row-major rectangular matrix: every row must have the same
// length. Functions validate rectangularity fail-fast and return ErrRagged
// on violation.
type Matrix [][]float64

// shape returns (rows, cols) of m after validating it is non-empty and
// rectangular. Shared guard for every Matrix entry point.
func shape(m Matrix) (int, int, error) {
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

// Dot returns the inner product of two vectors of equal length.
//
// Errors:
//   - ErrEmpty             — either vector is empty.
//   - ErrDimensionMismatch — lengths differ.
func Dot(a, b Vector) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmpty
	}
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var s float64
	for i, v := range a {
		s += v * b[i]
	}

	return s, nil
}

// MatVec returns the matrix-vector product m·v.
//
// Errors:
//   - ErrEmpty, ErrRagged  — shape violations of m or empty v.
//   - ErrDimensionMismatch — cols(m) != len(v).
func MatVec(m Matrix, v Vector) (Vector, error) {
	rows, cols, err := shape(m)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, ErrEmpty
	}
	if cols != len(v) {
		return nil, ErrDimensionMismatch
	}

	out := make(Vector, rows)
	for i, row := range m {
		var s float64
		for j, x := range row {
			s += x * v[j]
		}
		out[i] = s
	}

	return out, nil
}

// MatMul returns the matrix product a·b.
//
// Errors:
//   - ErrEmpty, ErrRagged  — shape violations of either operand.
//   - ErrDimensionMismatch — cols(a) != rows(b).
func MatMul(a, b Matrix) (Matrix, error) {
	ar, ac, err := shape(a)
	if err != nil {
		return nil, err
	}
	br, bc, err := shape(b)
	if err != nil {
		return nil, err
	}
	if ac != br {
		return nil, ErrDimensionMismatch
	}

	out := make(Matrix, ar)
	for i := 0; i < ar; i++ {
		out[i] = make([]float64, bc)
		for k := 0; k < ac; k++ {
			x := a[i][k]
			if x == 0 {
				continue
			}
			for j := 0; j < bc; j++ {
				out[i][j] += x * b[k][j]
			}
		}
	}

	return out, nil
}

// Transpose returns the transpose of a rectangular matrix. For every valid
// m, Transpose(Transpose(m)) equals m.
//
// Errors:
//   - ErrEmpty, ErrRagged — shape violations.
func Transpose(m Matrix) (Matrix, error) {
	rows, cols, err := shape(m)
	if err != nil {
		return nil, err
	}

	out := make(Matrix, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}

	return out, nil
}
