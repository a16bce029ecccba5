// SPDX-License-Identifier: MIT
// Package: stat
//
// Purpose:
//   - float64 statistics on top of gonum.org/v1/gonum/stat.
//   - gonum panics on empty or mismatched input; every entry point here
//     validates first and returns a sentinel instead.

package stat

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlalg/field"
	gstat "gonum.org/v1/gonum/stat"
)

// Float64 is Ordered[float64] with moments computed by gonum/stat.
type Float64 struct {
	Ordered[float64]
}

// Real is the float64 statistic over field.Real.
var Real = Float64{Ordered: NewOrdered[float64](field.Real{}, cmp.Compare[float64])}

// Mean returns the arithmetic mean. Errors: ErrEmptySample.
func (Float64) Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statErrorf(opMean, ErrEmptySample)
	}

	return gstat.Mean(xs, nil), nil
}

// Variance returns the unbiased sample variance.
// Errors: ErrTooFewSamples when len(xs) < 2.
func (Float64) Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, statErrorf(opVariance, fmt.Errorf("n=%d: %w", len(xs), ErrTooFewSamples))
	}

	return gstat.Variance(xs, nil), nil
}

// StdDev returns the square root of Variance.
// Errors: ErrTooFewSamples when len(xs) < 2.
func (Float64) StdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, statErrorf(opStdDev, fmt.Errorf("n=%d: %w", len(xs), ErrTooFewSamples))
	}

	return gstat.StdDev(xs, nil), nil
}

// Quantile returns the empirical p-quantile: the smallest sample value q
// with at least a p fraction of the sample ≤ q.
// Errors: ErrBadQuantile when p is outside [0, 1] or NaN, ErrEmptySample.
func (Float64) Quantile(p float64, xs []float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return 0, statErrorf(opQuantile, fmt.Errorf("p=%g: %w", p, ErrBadQuantile))
	}
	if len(xs) == 0 {
		return 0, statErrorf(opQuantile, ErrEmptySample)
	}
	s := slices.Clone(xs)
	slices.Sort(s)

	return gstat.Quantile(p, gstat.Empirical, s, nil), nil
}

// Covariance returns the sample covariance of paired samples.
// Errors: ErrLengthMismatch, ErrTooFewSamples.
func (Float64) Covariance(x, y []float64) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, statErrorf(opCovariance, err)
	}

	return gstat.Covariance(x, y, nil), nil
}

// Correlation returns the Pearson correlation of paired samples. A constant
// sample has zero deviation and yields NaN.
// Errors: ErrLengthMismatch, ErrTooFewSamples.
func (Float64) Correlation(x, y []float64) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, statErrorf(opCorrelation, err)
	}

	return gstat.Correlation(x, y, nil), nil
}

// validatePair ensures equal lengths of at least two.
func validatePair(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%d vs %d: %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) < 2 {
		return fmt.Errorf("n=%d: %w", len(x), ErrTooFewSamples)
	}

	return nil
}
