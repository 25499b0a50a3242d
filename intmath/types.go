// Package intmath: tunable options for tolerant float comparison.
package intmath

// Default tolerances for IsClose. The relative tolerance mirrors the
// common isclose convention (about 9 significant digits); the absolute
// tolerance defaults to zero so comparisons near zero stay strict unless
// the caller opts in.
const (
	// DefaultRelTol is the default relative tolerance for IsClose.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the default absolute tolerance for IsClose.
	DefaultAbsTol = 0.0
)

// CloseOption configures IsClose via functional arguments.
type CloseOption func(*closeConfig)

// closeConfig holds the effective tolerances of one IsClose call.
type closeConfig struct {
	relTol float64
	absTol float64
}

// defaultCloseConfig returns the tolerances used when no option is given.
func defaultCloseConfig() closeConfig {
	return closeConfig{relTol: DefaultRelTol, absTol: DefaultAbsTol}
}

// WithRelTol sets the relative tolerance. Negative values are treated
// as zero (strict).
func WithRelTol(rel float64) CloseOption {
	return func(c *closeConfig) {
		if rel < 0 {
			rel = 0
		}
		c.relTol = rel
	}
}

// WithAbsTol sets the absolute tolerance. Negative values are treated
// as zero (strict).
func WithAbsTol(abs float64) CloseOption {
	return func(c *closeConfig) {
		if abs < 0 {
			abs = 0
		}
		c.absTol = abs
	}
}
