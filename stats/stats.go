package stats

import (
	"errors"
	"math"
)

var (
	// ErrEmptyData is returned when a sample is required but empty.
	ErrEmptyData = errors.New("stats: empty data")

	// ErrInsufficientData is returned when fewer points are supplied than
	// the estimator needs (variance and regression need at least two).
	ErrInsufficientData = errors.New("stats: not enough data points")

	// ErrLengthMismatch is returned by LinearRegression when the x and y
	// samples have different lengths.
	ErrLengthMismatch = errors.New("stats: x and y lengths differ")

	// ErrSingular is returned by LinearRegression when x is constant:
	// the slope is undefined.
	ErrSingular = errors.New("stats: constant x, slope undefined")
)

// Mean returns the arithmetic mean of data.
//
// Errors:
//   - ErrEmptyData — len(data) == 0.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}

	var sum float64
	for _, v := range data {
		sum += v
	}

	return sum / float64(len(data)), nil
}

// Variance returns the sample variance of data (n-1 divisor).
//
// Errors:
//   - ErrInsufficientData — fewer than two points.
func Variance(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, ErrInsufficientData
	}

	avg, err := Mean(data)
	if err != nil {
		return 0, err
	}
	var s float64
	for _, v := range data {
		d := v - avg
		s += d * d
	}

	return s / float64(len(data)-1), nil
}

// StdDev returns the sample standard deviation, the square root of
// Variance.
func StdDev(data []float64) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// SummaryResult holds the one-pass aggregate of a sample.
// Var is the population variance (mean of squares minus square of mean),
// the convention that falls out of single-pass accumulation.
type SummaryResult struct {
	N    int
	Min  float64
	Max  float64
	Sum  float64
	Sum2 float64 // sum of squares
	Mean float64
	Var  float64
}

// Summary computes min, max, sum, sum of squares, mean and population
// variance of data in a single pass.
//
// Errors:
//   - ErrEmptyData — len(data) == 0.
func Summary(data []float64) (SummaryResult, error) {
	if len(data) == 0 {
		return SummaryResult{}, ErrEmptyData
	}

	r := SummaryResult{
		N:   len(data),
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
	for _, v := range data {
		r.Sum += v
		r.Sum2 += v * v
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	n := float64(r.N)
	r.Mean = r.Sum / n
	r.Var = r.Sum2/n - r.Mean*r.Mean
	if r.Var < 0 {
		r.Var = 0 // clamp the tiny negative drift of the one-pass formula
	}

	return r, nil
}

// LinearRegression fits y ≈ slope·x + intercept by ordinary least
// squares and returns the point estimates together with s2, the mean
// squared residual of the fit.
//
// Errors:
//   - ErrLengthMismatch   — len(x) != len(y).
//   - ErrInsufficientData — fewer than two points.
//   - ErrSingular         — x is constant; no slope exists.
func LinearRegression(x, y []float64) (slope, intercept, s2 float64, err error) {
	if len(x) != len(y) {
		return 0, 0, 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, 0, 0, ErrInsufficientData
	}

	n := float64(len(x))
	var sx, sy, sxx, sxy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
		sxx += x[i] * x[i]
		sxy += x[i] * y[i]
	}
	mx, my := sx/n, sy/n
	den := sxx/n - mx*mx
	if den == 0 {
		return 0, 0, 0, ErrSingular
	}

	slope = (sxy/n - mx*my) / den
	intercept = my - slope*mx
	for i := range x {
		r := y[i] - intercept - slope*x[i]
		s2 += r * r
	}
	s2 /= n

	return slope, intercept, s2, nil
}
