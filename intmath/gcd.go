package intmath

import "math/big"

// GCD — greatest common divisor
//
// Description:
//
//	GCD(x, y) returns the largest integer dividing both x and y, computed
//	with the iterative Euclidean algorithm on remainders. Signs are
//	irrelevant: GCD(-12, 18) == 6. By the usual convention GCD(0, 0) == 0.
//
// Domain note:
//
//	The single unrepresentable case is gcd(math.MinInt64, 0) (and the
//	symmetric permutations over {0, math.MinInt64}), whose mathematical
//	value 2⁶³ does not fit in an int64; GCD then returns math.MinInt64,
//	the only negative result it can produce. Every other input pair
//	yields a non-negative value.
//
// Complexity: O(log min(|x|,|y|)) divisions.
func GCD(x, y int64) int64 {
	for y != 0 {
		x, y = y, x%y
	}
	if x < 0 {
		x = -x
	}

	return x
}

// GCDAll reduces one or more integers pairwise left-to-right with GCD.
// The result is order-independent since gcd is associative and commutative.
// Returns ErrNoArguments for an empty argument list: the zero-argument gcd
// has no agreed identity here and is a documented precondition instead.
func GCDAll(vs ...int64) (int64, error) {
	if len(vs) == 0 {
		return 0, ErrNoArguments
	}

	g := vs[0]
	for _, v := range vs[1:] {
		g = GCD(g, v)
		if g == 1 {
			break // gcd can only stay 1 from here on
		}
	}
	if g < 0 {
		g = -g
	}

	return g, nil
}

// XGCD — extended Euclidean algorithm
//
// Description:
//
//	XGCD(x, y) returns (g, a, b) with a*x + b*y == g == GCD(x, y) and
//	g ≥ 0 (Bézout coefficients), using the iterative scheme of
//	Knuth, TAOCP Vol. 1, Algorithm E.
//
// Errors:
//   - ErrBothZero — x == y == 0; no Bézout convention is chosen for it.
//
// Complexity: O(log min(|x|,|y|)) divisions.
func XGCD(x, y int64) (g, a, b int64, err error) {
	if x == 0 && y == 0 {
		return 0, 0, 0, ErrBothZero
	}

	a0, a1 := int64(1), int64(0)
	b0, b1 := int64(0), int64(1)
	r0, r1 := x, y
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		a0, a1 = a1, a0-q*a1
		b0, b1 = b1, b0-q*b1
	}

	// Normalize so that g is non-negative.
	if r0 < 0 {
		r0, a0, b0 = -r0, -a0, -b0
	}

	return r0, a0, b0, nil
}

// LCM returns the least common multiple of x and y, non-negative, with
// LCM(0, n) == 0. The product is evaluated in arbitrary precision and
// checked against the int64 range, so an overflowing result surfaces as
// ErrOverflow rather than a wrapped value.
func LCM(x, y int64) (int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}

	g := GCD(x, y)

	// |x/g * y| computed in big.Int: x/g and y are both int64-safe, their
	// product may not be.
	l := new(big.Int).Mul(big.NewInt(x/g), big.NewInt(y))
	l.Abs(l)
	if !l.IsInt64() {
		return 0, ErrOverflow
	}

	return l.Int64(), nil
}

// LCMAll reduces one or more integers pairwise left-to-right with LCM.
// Returns ErrNoArguments for an empty argument list and propagates
// ErrOverflow from any intermediate step.
func LCMAll(vs ...int64) (int64, error) {
	if len(vs) == 0 {
		return 0, ErrNoArguments
	}

	l := vs[0]
	if l < 0 {
		l = -l
	}
	var err error
	for _, v := range vs[1:] {
		if l, err = LCM(l, v); err != nil {
			return 0, err
		}
		if l == 0 {
			break // any further lcm stays 0
		}
	}

	return l, nil
}
