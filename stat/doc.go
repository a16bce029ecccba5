// SPDX-License-Identifier: MIT

// Package stat computes sample statistics over any field.Field.
//
// 🚀 Three layers
//
//	Statistic[A]  field only: Sum, Mean, Variance, CenterColumns,
//	              CovarianceMatrix. Counts are built as 1+1+…+1 in the field,
//	              so the same code runs over Real, Complex and GF(p).
//	Ordered[A]    Statistic plus a total order: Median, Histogram, Mode,
//	              Min, Max.
//	Float64       Ordered[float64] whose moments, quantiles and pairwise
//	              covariance/correlation go through gonum/stat.
//
// ✨ Conventions
//   - Variance and covariance are sample estimators (divide by n-1).
//   - Mean, Variance and Median fail with ErrEmptySample or
//     ErrTooFewSamples; Mode, Min and Max report absence with ok == false.
//   - Histogram bins are sorted ascending; Mode breaks ties toward the
//     smallest value.
//   - Over GF(p) the count n is reduced mod p. A count ≡ 0 divides to the
//     field's Div-by-zero result (Zero for PrimeField).
//   - Inputs are never mutated; ordered statistics sort a private copy.
//
// Usage:
//
//	m, err := stat.Real.Mean([]float64{1, 2, 3}) // 2
//	mode, ok := stat.Real.Mode([]float64{3, 1, 3}) // 3, true
//
// Complexity quicksheet:
//   - Sum/Mean/Variance: O(n) field operations.
//   - Median/Histogram/Mode: O(n log n) comparisons; Min/Max: O(n).
//   - CovarianceMatrix: O(r·c²).
package stat
