package intmath

import "math"

// Digits decomposes n into its positional digits in the given base,
// most-significant digit first. Digits(0, b) is []int{0}.
//
// Errors:
//   - ErrNegative — n < 0.
//   - ErrBadBase  — base < 2.
func Digits(n int64, base int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if base < 2 {
		return nil, ErrBadBase
	}
	if n == 0 {
		return []int{0}, nil
	}

	b := int64(base)
	var rev []int
	for n > 0 {
		rev = append(rev, int(n%b))
		n /= b
	}
	// reverse in place: loop above emits least-significant first
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// FromDigits recomposes an integer from its positional digits in the given
// base, most-significant first. Inverse of Digits for every valid input.
//
// Errors:
//   - ErrBadBase     — base < 2.
//   - ErrNoArguments — empty digit slice.
//   - ErrBadDigit    — a digit is negative or ≥ base.
//   - ErrOverflow    — the value does not fit in an int64.
func FromDigits(digits []int, base int) (int64, error) {
	if base < 2 {
		return 0, ErrBadBase
	}
	if len(digits) == 0 {
		return 0, ErrNoArguments
	}

	b := int64(base)
	var v int64
	for _, d := range digits {
		if d < 0 || d >= base {
			return 0, ErrBadDigit
		}
		dd := int64(d)
		if v > (math.MaxInt64-dd)/b {
			return 0, ErrOverflow
		}
		v = v*b + dd
	}

	return v, nil
}
