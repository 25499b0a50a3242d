package intmath

import "math"

// maxISqrt is the largest r with r*r representable in int64:
// 3037000499² = 9223372030926249001 ≤ math.MaxInt64 < 3037000500².
const maxISqrt = 3037000499

// Sign returns -1, 0 or +1 according to the sign of x.
func Sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return +1
	default:
		return 0
	}
}

// SignF returns -1, 0 or +1 according to the sign of x.
// NaN and ±0.0 both map to 0.
func SignF(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return +1
	default:
		return 0
	}
}

// ISqrt returns the floor integer square root r of n, the unique r with
// r*r ≤ n < (r+1)*(r+1). Returns ErrNegative for n < 0.
//
// The float64 estimate from math.Sqrt is corrected by at most a couple of
// integer steps, so the result is exact over the whole int64 range.
//
// Complexity: O(1).
func ISqrt(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n < 2 {
		return n, nil
	}

	// Float estimate, clamped so r*r never overflows during correction.
	r := int64(math.Sqrt(float64(n)))
	if r > maxISqrt {
		r = maxISqrt
	}
	for r > 0 && r*r > n {
		r--
	}
	for r < maxISqrt && (r+1)*(r+1) <= n {
		r++
	}

	return r, nil
}

// IsClose reports whether a and b are equal within tolerance:
//
//	|a-b| ≤ max(relTol · max(|a|,|b|), absTol)
//
// Defaults are DefaultRelTol / DefaultAbsTol; override with WithRelTol and
// WithAbsTol. NaN is never close to anything (including itself); equal
// infinities are close.
func IsClose(a, b float64, opts ...CloseOption) bool {
	cfg := defaultCloseConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b { // covers equal infinities and exact hits
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))

	return diff <= math.Max(cfg.relTol*scale, cfg.absTol)
}
