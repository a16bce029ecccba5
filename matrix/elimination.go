// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan elimination over a field.
//
// Blueprint:
//
//	Stage 1 (Validate): m square, right-hand side of matching height.
//	Stage 2 (Prepare): copy m and the right-hand side into working rows.
//	Stage 3 (Execute): for each column pick the first row at or below the
//	  diagonal whose entry is non-zero under eq, swap it up, scale it to a
//	  unit pivot and clear the column in every other row.
//	Stage 4 (Return): the right-hand side now holds m⁻¹·rhs.
//
// Pivot choice is "first non-zero", not largest magnitude: a generic field
// has no ordering. Over Real this is exact for exactly representable data
// but carries no partial-pivoting stability guarantee.

package matrix

import (
	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/vector"
)

// Inverse returns m⁻¹. eq decides which entries count as zero pivots.
// Errors: ErrDimensionMismatch when m is not square, ErrSingular when m has
// no inverse.
func (al Algebra[A]) Inverse(m Matrix[A], eq field.Eq[A]) (Matrix[A], error) {
	if err := ValidateSquare(m); err != nil {
		return Matrix[A]{}, matrixErrorf(opInverse, err)
	}
	id, err := al.Identity(m.r)
	if err != nil {
		return Matrix[A]{}, matrixErrorf(opInverse, err)
	}
	rhs := id.ToSlices()
	if err = al.eliminate(m.ToSlices(), rhs, eq); err != nil {
		return Matrix[A]{}, matrixErrorf(opInverse, err)
	}

	return fromTrusted(m.r, m.r, rhs), nil
}

// Solve returns the unique x with m·x = b.
// Errors: ErrDimensionMismatch when m is not square or b.Len() != m.Rows(),
// ErrSingular when the system has no unique solution.
func (al Algebra[A]) Solve(m Matrix[A], b vector.Vector[A], eq field.Eq[A]) (vector.Vector[A], error) {
	if err := ValidateSquare(m); err != nil {
		return vector.Vector[A]{}, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b.Len(), m.r); err != nil {
		return vector.Vector[A]{}, matrixErrorf(opSolve, err)
	}
	rhs := make([][]A, m.r)
	for i, v := range b.Slice() {
		rhs[i] = []A{v}
	}
	if err := al.eliminate(m.ToSlices(), rhs, eq); err != nil {
		return vector.Vector[A]{}, matrixErrorf(opSolve, err)
	}
	out := make([]A, m.r)
	for i := range rhs {
		out[i] = rhs[i][0]
	}

	return vector.Of(out...), nil
}

// eliminate reduces the square a to the identity in place, applying the same
// row operations to rhs. Both must be private copies.
func (al Algebra[A]) eliminate(a, rhs [][]A, eq field.Eq[A]) error {
	var (
		n         = len(a)
		zero, one = al.f.Zero(), al.f.One()
		col, r, j int
	)
	for col = 0; col < n; col++ {
		pivot := -1
		for r = col; r < n; r++ {
			if !eq.Equals(a[r][col], zero) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return ErrSingular
		}
		a[col], a[pivot] = a[pivot], a[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		inv := al.f.Div(one, a[col][col])
		for j = range a[col] {
			a[col][j] = al.f.Mul(inv, a[col][j])
		}
		for j = range rhs[col] {
			rhs[col][j] = al.f.Mul(inv, rhs[col][j])
		}

		for r = 0; r < n; r++ {
			factor := a[r][col]
			if r == col || eq.Equals(factor, zero) {
				continue
			}
			for j = range a[r] {
				a[r][j] = al.f.Sub(a[r][j], al.f.Mul(factor, a[col][j]))
			}
			for j = range rhs[r] {
				rhs[r][j] = al.f.Sub(rhs[r][j], al.f.Mul(factor, rhs[col][j]))
			}
		}
	}

	return nil
}
