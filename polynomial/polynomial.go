package polynomial

// Polynomial holds coefficients in ascending powers of x:
// Polynomial{1, 2, 3} is 3x² + 2x + 1. The zero polynomial is the empty
// (or all-zero) slice. Operations treat values as immutable and always
// return fresh slices.
type Polynomial []float64

// Degree returns the degree of p after ignoring trailing zero
// coefficients; the zero polynomial has degree 0 by convention here.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}

	return 0
}

// Trim returns p without trailing zero coefficients. The zero polynomial
// trims to an empty slice.
func (p Polynomial) Trim() Polynomial {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	out := make(Polynomial, n)
	copy(out, p[:n])

	return out
}

// Equal reports whether p and q denote the same polynomial, trailing
// zeros ignored.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.Trim(), q.Trim()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Eval evaluates p at x by Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}

	return y
}

// EvalDiff returns Eval(x2) - Eval(x1) in one pass over the coefficients,
// the shape used for definite-integral evaluation: p.Integral().EvalDiff(a, b)
// is the integral of p from a to b.
func (p Polynomial) EvalDiff(x1, x2 float64) float64 {
	var y float64
	px1, px2 := 1.0, 1.0
	for _, c := range p {
		y += c * (px2 - px1)
		px1 *= x1
		px2 *= x2
	}

	return y
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	long, short := p, q
	if len(q) > len(p) {
		long, short = q, p
	}
	out := make(Polynomial, len(long))
	copy(out, long)
	for i, c := range short {
		out[i] += c
	}

	return out
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.Scale(-1)
}

// Scale returns c·p.
func (p Polynomial) Scale(c float64) Polynomial {
	out := make(Polynomial, len(p))
	for i, v := range p {
		out[i] = c * v
	}

	return out
}

// Mul returns the product p·q by coefficient convolution.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return Polynomial{}
	}
	out := make(Polynomial, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] += a * b
		}
	}

	return out
}

// Pow returns p^e by repeated multiplication; p⁰ is the constant 1.
//
// Errors:
//   - ErrNegativePower — e < 0.
func (p Polynomial) Pow(e int) (Polynomial, error) {
	if e < 0 {
		return nil, ErrNegativePower
	}

	out := Polynomial{1}
	for i := 0; i < e; i++ {
		out = out.Mul(p)
	}

	return out, nil
}

// Derivative returns dp/dx. The derivative of a constant is the zero
// polynomial, rendered as Polynomial{0}.
func (p Polynomial) Derivative() Polynomial {
	if len(p) < 2 {
		return Polynomial{0}
	}
	out := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}

	return out
}

// Integral returns the antiderivative of p with constant term zero.
func (p Polynomial) Integral() Polynomial {
	if len(p) == 0 {
		return Polynomial{}
	}
	out := make(Polynomial, len(p)+1)
	for i, c := range p {
		out[i+1] = c / float64(i+1)
	}

	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}

	return true
}
