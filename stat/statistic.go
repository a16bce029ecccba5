// SPDX-License-Identifier: MIT
// Package: stat
//
// Purpose:
//   - Field-generic moments: Sum, Mean, Variance.
//   - Column statistics over matrix.Matrix: CenterColumns, CovarianceMatrix
//     as compositions of Transpose, Mul and Scale.

package stat

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/vector"
)

// Statistic derives sample statistics from a field.
type Statistic[A any] struct {
	f   field.Field[A]
	alg matrix.Algebra[A]
}

// New derives statistics over f.
func New[A any](f field.Field[A]) Statistic[A] {
	return Statistic[A]{f: f, alg: matrix.NewAlgebra(f)}
}

// Field returns the underlying field.
func (s Statistic[A]) Field() field.Field[A] { return s.f }

// Sum folds xs with Add; the empty sum is Zero.
func (s Statistic[A]) Sum(xs []A) A {
	return field.Fold(field.SumMonoid(s.f), xs)
}

// count returns n as a field element, One added n times.
func (s Statistic[A]) count(n int) A {
	c, one := s.f.Zero(), s.f.One()
	for i := 0; i < n; i++ {
		c = s.f.Add(c, one)
	}

	return c
}

// Mean returns Σx / n. Errors: ErrEmptySample.
func (s Statistic[A]) Mean(xs []A) (A, error) {
	if len(xs) == 0 {
		var zero A
		return zero, statErrorf(opMean, ErrEmptySample)
	}

	return s.f.Div(s.Sum(xs), s.count(len(xs))), nil
}

// Variance returns the sample variance Σ(x-mean)² / (n-1).
// Errors: ErrTooFewSamples when len(xs) < 2.
func (s Statistic[A]) Variance(xs []A) (A, error) {
	if len(xs) < 2 {
		var zero A
		return zero, statErrorf(opVariance, fmt.Errorf("n=%d: %w", len(xs), ErrTooFewSamples))
	}
	mean, _ := s.Mean(xs)
	acc := s.f.Zero()
	for _, x := range xs {
		d := s.f.Sub(x, mean)
		acc = s.f.Add(acc, s.f.Mul(d, d))
	}

	return s.f.Div(acc, s.count(len(xs)-1)), nil
}

// CenterColumns subtracts each column's mean from that column. Rows are
// observations, columns are variables. It returns the centered copy and the
// column means. A matrix with no rows or no columns is returned as is with
// Zero means.
func (s Statistic[A]) CenterColumns(m matrix.Matrix[A]) (matrix.Matrix[A], vector.Vector[A], error) {
	r, c := m.Shape()
	if r == 0 || c == 0 {
		means, err := vector.FromLength(c, s.f.Zero())
		if err != nil {
			return matrix.Matrix[A]{}, vector.Vector[A]{}, statErrorf(opCenterColumns, err)
		}

		return m, means, nil
	}

	cols := matrix.Transpose(m).ToSlices()
	means := make([]A, c)
	for j, col := range cols {
		means[j], _ = s.Mean(col)
	}
	rows := m.ToSlices()
	for _, row := range rows {
		for j := range row {
			row[j] = s.f.Sub(row[j], means[j])
		}
	}
	out, err := matrix.From2D(r, c, rows)
	if err != nil {
		return matrix.Matrix[A]{}, vector.Vector[A]{}, statErrorf(opCenterColumns, err)
	}

	return out, vector.Of(means...), nil
}

// CovarianceMatrix returns the c×c sample covariance of m's columns,
// (Xcᵀ·Xc)/(r-1) with Xc the column-centered m.
// Errors: ErrTooFewSamples when m has fewer than two rows.
func (s Statistic[A]) CovarianceMatrix(m matrix.Matrix[A]) (matrix.Matrix[A], error) {
	if m.Rows() < 2 {
		return matrix.Matrix[A]{}, statErrorf(opCovarianceMatrix,
			fmt.Errorf("rows=%d: %w", m.Rows(), ErrTooFewSamples))
	}
	xc, _, err := s.CenterColumns(m)
	if err != nil {
		return matrix.Matrix[A]{}, statErrorf(opCovarianceMatrix, err)
	}
	gram, err := s.alg.Mul(matrix.Transpose(xc), xc)
	if err != nil {
		return matrix.Matrix[A]{}, statErrorf(opCovarianceMatrix, err)
	}
	inv := s.f.Div(s.f.One(), s.count(m.Rows()-1))

	return s.alg.Scale(gram, inv), nil
}
