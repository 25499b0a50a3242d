// Package intmath provides primitive integer arithmetic helpers:
// sign, integer square root, tolerant float comparison, positional
// base conversion, and the GCD/LCM layer (plain, variadic and extended).
//
// ✨ Key features:
//   - Sign / SignF — three-way sign of integers and floats
//   - ISqrt — floor integer square root, exact over the whole int64 range
//   - IsClose — relative+absolute epsilon comparison for float64
//   - Digits / FromDigits — positional base conversion, most-significant first
//   - GCD, GCDAll, XGCD, LCM, LCMAll — Euclidean layer with Bézout coefficients
//
// All functions are pure and stateless; none mutate their arguments and
// none cache results, so concurrent use needs no locking.
//
// Overflow policy: int64 arithmetic never wraps silently. Operations whose
// mathematical result may not fit an int64 (LCM, FromDigits) return
// ErrOverflow instead of a truncated value.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathx/intmath"
//
//	g, a, b, err := intmath.XGCD(240, 46)
//	// g == 2, a*240 + b*46 == 2
//
// Errors are package-level sentinels (ErrNegative, ErrBadBase, ErrBothZero,
// ErrNoArguments, ErrOverflow, ...) and must be matched with errors.Is.
package intmath
