package polynomial

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// termPat matches one normalized term: an optional signed coefficient
// followed by an optional x part with an optional integer power.
var termPat = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+)?)(x(?:\^(\d+))?)?$`)

// Parse reads the simple text form "a x^n + b x^m + ... + c x + d": float
// coefficients, integer powers, fixed variable name x. Spaces and '*' are
// optional and terms may appear in any order or overlap — "3x + x^2 - x"
// parses to x² + 2x. LaTeX '$' markers are stripped, mirroring String's
// plain rendering.
//
// Errors:
//   - ErrParse — empty input, an unknown symbol, or a malformed term.
func Parse(s string) (Polynomial, error) {
	clean := strings.NewReplacer(" ", "", "\t", "", "*", "", "$", "").Replace(s)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	// Split into sign-prefixed terms: "+x^2-3x+5" → "+x^2", "-3x", "+5".
	var terms []string
	start := 0
	for i, r := range clean {
		if i > start && (r == '+' || r == '-') {
			terms = append(terms, clean[start:i])
			start = i
		}
	}
	terms = append(terms, clean[start:])

	coeffs := map[int]float64{}
	maxPow := 0
	for _, term := range terms {
		m := termPat.FindStringSubmatch(term)
		if m == nil || (m[1] == "" && m[2] == "") || (m[1] == "+" || m[1] == "-") && m[2] == "" {
			return nil, fmt.Errorf("%w: bad term %q", ErrParse, term)
		}

		c := 1.0
		switch m[1] {
		case "", "+":
		case "-":
			c = -1
		default:
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad coefficient %q", ErrParse, m[1])
			}
			c = v
		}

		pow := 0
		if m[2] != "" {
			pow = 1
			if m[3] != "" {
				p, err := strconv.Atoi(m[3])
				if err != nil {
					return nil, fmt.Errorf("%w: bad power %q", ErrParse, m[3])
				}
				pow = p
			}
		}

		coeffs[pow] += c
		if pow > maxPow {
			maxPow = pow
		}
	}

	out := make(Polynomial, maxPow+1)
	for pow, c := range coeffs {
		out[pow] = c
	}

	return out, nil
}

// String renders p in descending powers with explicit signs:
// Polynomial{2, 2, 1} prints as "x^2 + 2x + 2" and the zero polynomial
// as "0". Unit coefficients drop the 1 ("x", "-x"); the format round-trips
// through Parse.
func (p Polynomial) String() string {
	t := p.Trim()
	if len(t) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i := len(t) - 1; i >= 0; i-- {
		c := t[i]
		if c == 0 {
			continue
		}

		lead := sb.Len() == 0
		switch {
		case lead && c < 0:
			sb.WriteString("-")
			c = -c
		case !lead && c < 0:
			sb.WriteString(" - ")
			c = -c
		case !lead:
			sb.WriteString(" + ")
		}
		sb.WriteString(termString(c, i))
	}

	return sb.String()
}

// termString renders one non-negative coefficient and power pair.
func termString(c float64, pow int) string {
	cs := strconv.FormatFloat(c, 'g', -1, 64)
	switch {
	case pow == 0:
		return cs
	case c == 1:
		cs = ""
	}
	if pow == 1 {
		return cs + "x"
	}

	return fmt.Sprintf("%sx^%d", cs, pow)
}
