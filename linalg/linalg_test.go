package linalg_test

import (
	"testing"

	"github.com/katalvlaran/mathx/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDot covers the scalar product and both guard conditions.
func TestDot(t *testing.T) {
	s, err := linalg.Dot(linalg.Vector{1, 2, 3}, linalg.Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, s, "1·4 + 2·5 + 3·6")

	s, err = linalg.Dot(linalg.Vector{1, -1}, linalg.Vector{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "orthogonal vectors")

	_, err = linalg.Dot(linalg.Vector{}, linalg.Vector{1})
	assert.ErrorIs(t, err, linalg.ErrEmpty, "empty vector must error")

	_, err = linalg.Dot(linalg.Vector{1, 2}, linalg.Vector{1, 2, 3})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "length mismatch must error")
}

// TestMatVec covers the matrix-vector shape and its guards.
func TestMatVec(t *testing.T) {
	m := linalg.Matrix{{1, 2}, {3, 4}, {5, 6}}

	v, err := linalg.MatVec(m, linalg.Vector{1, 1})
	require.NoError(t, err)
	assert.Equal(t, linalg.Vector{3, 7, 11}, v, "row sums for the ones vector")

	_, err = linalg.MatVec(m, linalg.Vector{1, 2, 3})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "cols(m) != len(v) must error")

	_, err = linalg.MatVec(linalg.Matrix{{1, 2}, {3}}, linalg.Vector{1, 2})
	assert.ErrorIs(t, err, linalg.ErrRagged, "ragged matrix must error")

	_, err = linalg.MatVec(linalg.Matrix{}, linalg.Vector{1})
	assert.ErrorIs(t, err, linalg.ErrEmpty, "empty matrix must error")
}

// TestMatMul pins a rectangular product and the inner-dimension guard.
func TestMatMul(t *testing.T) {
	a := linalg.Matrix{{1, 2, 3}, {4, 5, 6}}      // 2×3
	b := linalg.Matrix{{7, 8}, {9, 10}, {11, 12}} // 3×2

	p, err := linalg.MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, linalg.Matrix{{58, 64}, {139, 154}}, p, "2×3 · 3×2")

	_, err = linalg.MatMul(a, a)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "2×3 · 2×3 must error")
}

// TestMatMul_Identity verifies I·m == m·I == m.
func TestMatMul_Identity(t *testing.T) {
	m := linalg.Matrix{{2, -1}, {0, 3}}
	id := linalg.Matrix{{1, 0}, {0, 1}}

	left, err := linalg.MatMul(id, m)
	require.NoError(t, err)
	right, err := linalg.MatMul(m, id)
	require.NoError(t, err)
	assert.Equal(t, m, left, "I·m")
	assert.Equal(t, m, right, "m·I")
}

// TestTranspose covers the rectangular shape and the round-trip invariant.
func TestTranspose(t *testing.T) {
	m := linalg.Matrix{{1, 2, 3}, {4, 5, 6}}

	tr, err := linalg.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, linalg.Matrix{{1, 4}, {2, 5}, {3, 6}}, tr, "2×3 transpose")

	back, err := linalg.Transpose(tr)
	require.NoError(t, err)
	assert.Equal(t, m, back, "Transpose(Transpose(m)) == m")

	_, err = linalg.Transpose(linalg.Matrix{{1}, {2, 3}})
	assert.ErrorIs(t, err, linalg.ErrRagged, "ragged matrix must error")
}

// TestTranspose_RoundTripShapes sweeps the round-trip over several shapes.
func TestTranspose_RoundTripShapes(t *testing.T) {
	shapes := []linalg.Matrix{
		{{1}},
		{{1, 2, 3, 4}},
		{{1}, {2}, {3}},
		{{1, 2}, {3, 4}, {5, 6}, {7, 8}},
	}
	for i, m := range shapes {
		tr, err := linalg.Transpose(m)
		require.NoError(t, err, "shape %d", i)
		back, err := linalg.Transpose(tr)
		require.NoError(t, err, "shape %d", i)
		assert.Equal(t, m, back, "round-trip for shape %d", i)
	}
}
