// Package linalg provides small dense linear-algebra helpers in two
// layers: a float64 layer (dot products, matrix products, transpose) and
// an exact *big.Int layer for matrix exponentiation.
//
// ✨ Key features:
//   - Dot / MatVec / MatMul — the three product shapes over Vector/Matrix
//   - Transpose — rectangular transpose, Transpose(Transpose(m)) == m
//   - BigMatrix + Power / PowerMod — matrix exponentiation by repeated
//     squaring in arbitrary precision
//
// The exact layer is the point of the package: m^p stays bit-for-bit
// correct for powers where fixed-width element types silently overflow.
// Power([[1,2],[1,0]], 100) has 30-digit entries and every digit is exact.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathx/linalg"
//
//	m := linalg.NewBigMatrix([][]int64{{1, 1}, {1, 0}})
//	p, err := linalg.Power(m, 90) // p[0][1] is Fibonacci(90), exact
//
// All inputs are validated fail-fast: ragged rows, empty shapes and
// mismatched dimensions surface as sentinel errors (errors.Is), never as
// panics or truncated results. Nothing is mutated or cached, so concurrent
// use needs no locking.
package linalg
