// Package stats provides small descriptive-statistics helpers over
// float64 samples: mean, sample variance, standard deviation, a one-pass
// summary and an ordinary-least-squares line fit.
//
// Two variance conventions appear, on purpose:
//   - Variance/StdDev use the sample (n-1) divisor, suited to estimating
//     a population from a sample.
//   - Summary.Var is the population variance ("mean of squares minus
//     square of mean"), matching the one-pass accumulation it comes from.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathx/stats"
//
//	m, err := stats.Mean(xs)
//	s, err := stats.Summary(xs)           // Min/Max/Sum/Sum2/Mean/Var
//	b1, b0, s2, err := stats.LinearRegression(xs, ys)
//
// All functions are pure, fail fast on degenerate inputs (empty data,
// mismatched lengths, constant x in a regression) and never return NaN
// for a valid input.
package stats
