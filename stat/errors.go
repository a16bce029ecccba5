// SPDX-License-Identifier: MIT

// Package stat: sentinel error set.
// Every message is prefixed with "stat: ..." and wrapped with an operation
// tag at the detection site; match with errors.Is.
package stat

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySample is returned when a statistic needs at least one value.
	ErrEmptySample = errors.New("stat: empty sample")

	// ErrTooFewSamples is returned by sample (n-1) estimators when n < 2.
	ErrTooFewSamples = errors.New("stat: need at least two samples")

	// ErrLengthMismatch indicates paired samples of different lengths.
	ErrLengthMismatch = errors.New("stat: length mismatch")

	// ErrBadQuantile indicates a quantile level outside [0, 1].
	ErrBadQuantile = errors.New("stat: quantile must be in [0, 1]")
)

// Operation tags for error wrapping.
const (
	opMean             = "Mean"
	opVariance         = "Variance"
	opStdDev           = "StdDev"
	opMedian           = "Median"
	opQuantile         = "Quantile"
	opCovariance       = "Covariance"
	opCorrelation      = "Correlation"
	opCenterColumns    = "CenterColumns"
	opCovarianceMatrix = "CovarianceMatrix"
)

// statErrorf wraps err with an operation tag, preserving it for errors.Is.
func statErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
