// SPDX-License-Identifier: MIT
// Package matrix provides matrix algebra over an arbitrary field: element-wise
// addition and subtraction, scalar scaling, matrix-vector and matrix-matrix
// multiplication. Every kernel validates shapes first and returns a fresh
// matrix; operands are never mutated.
//
// Implementation notes:
//   - Row operations delegate to vector.VectorField, so the field laws used
//     here are exactly the ones the vector space already relies on.
//   - Mul forms bᵀ once and takes row·column dot products.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/vector"
)

// Algebra is the matrix algebra derived from a field.
type Algebra[A any] struct {
	f  field.Field[A]
	vs vector.VectorField[A]
}

// NewAlgebra derives matrix algebra over f.
func NewAlgebra[A any](f field.Field[A]) Algebra[A] {
	return Algebra[A]{f: f, vs: vector.NewVectorField(f)}
}

// Zero returns the rows×cols zero matrix (ErrBadShape on negative dims).
func (al Algebra[A]) Zero(rows, cols int) (Matrix[A], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return Matrix[A]{}, matrixErrorf(opZero, err)
	}
	vs := make([]vector.Vector[A], rows)
	for i := range vs {
		row, err := al.vs.Zero(cols)
		if err != nil {
			return Matrix[A]{}, matrixErrorf(opZero, err)
		}
		vs[i] = row
	}

	return Matrix[A]{r: rows, c: cols, data: vs}, nil
}

// Identity returns the n×n identity (ErrBadShape when n < 0).
func (al Algebra[A]) Identity(n int) (Matrix[A], error) {
	if err := ValidateShape(n, n); err != nil {
		return Matrix[A]{}, matrixErrorf(opIdentity, err)
	}
	zero, one := al.f.Zero(), al.f.One()
	out := make([][]A, n)
	for i := range out {
		out[i] = make([]A, n)
		for j := range out[i] {
			out[i][j] = zero
		}
		out[i][i] = one
	}

	return fromTrusted(n, n, out), nil
}

// addSub lifts a row-wise vector operation over two same-shape matrices.
func (al Algebra[A]) addSub(a, b Matrix[A], op func(x, y vector.Vector[A]) (vector.Vector[A], error), tag string) (Matrix[A], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return Matrix[A]{}, matrixErrorf(tag, err)
	}
	vs := make([]vector.Vector[A], a.r)
	for i := range vs {
		row, err := op(a.data[i], b.data[i])
		if err != nil {
			return Matrix[A]{}, matrixErrorf(tag, fmt.Errorf("row %d: %w", i, err))
		}
		vs[i] = row
	}

	return Matrix[A]{r: a.r, c: a.c, data: vs}, nil
}

// Add returns a + b. Errors: ErrDimensionMismatch when shapes differ.
func (al Algebra[A]) Add(a, b Matrix[A]) (Matrix[A], error) {
	return al.addSub(a, b, al.vs.Add, opAdd)
}

// Sub returns a - b. Errors: ErrDimensionMismatch when shapes differ.
func (al Algebra[A]) Sub(a, b Matrix[A]) (Matrix[A], error) {
	return al.addSub(a, b, al.vs.Sub, opSub)
}

// Scale returns alpha·m.
func (al Algebra[A]) Scale(m Matrix[A], alpha A) Matrix[A] {
	vs := make([]vector.Vector[A], m.r)
	for i, row := range m.data {
		vs[i] = al.vs.ScalarMul(alpha, row)
	}

	return Matrix[A]{r: m.r, c: m.c, data: vs}
}

// MulVec returns m·x. Errors: ErrDimensionMismatch when x.Len() != m.Cols().
func (al Algebra[A]) MulVec(m Matrix[A], x vector.Vector[A]) (vector.Vector[A], error) {
	if err := ValidateVecLen(x.Len(), m.c); err != nil {
		return vector.Vector[A]{}, matrixErrorf(opMulVec, err)
	}
	out := make([]A, m.r)
	for i, row := range m.data {
		d, err := al.vs.Dot(row, x)
		if err != nil {
			return vector.Vector[A]{}, matrixErrorf(opMulVec, err)
		}
		out[i] = d
	}

	return vector.Of(out...), nil
}

// Mul returns a·b (a.Rows × b.Cols).
// Errors: ErrDimensionMismatch when a.Cols != b.Rows.
func (al Algebra[A]) Mul(a, b Matrix[A]) (Matrix[A], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return Matrix[A]{}, matrixErrorf(opMul, err)
	}
	bt := Transpose(b)
	out := make([][]A, a.r)
	for i, row := range a.data {
		out[i] = make([]A, b.c)
		for j, col := range bt.data {
			d, err := al.vs.Dot(row, col)
			if err != nil {
				return Matrix[A]{}, matrixErrorf(opMul, err)
			}
			out[i][j] = d
		}
	}

	return fromTrusted(a.r, b.c, out), nil
}
