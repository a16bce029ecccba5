// SPDX-License-Identifier: MIT

// Package vector - vector space derived from a field.
//
// Every VectorField operation is the field operation lifted elementwise:
//   - Add/Sub   : ZipWith(x, y, f.Add / f.Sub)
//   - ScalarMul : Map(x, xi -> f.Mul(xi, a))
//   - Zero(n)   : FromLength(n, f.Zero())
//   - ScalarOne : f.One()
package vector

import "github.com/katalvlaran/lvlalg/field"

// VectorField is the vector space of vectors over a field, of any length.
// It holds no state other than the field it was derived from.
type VectorField[A any] struct {
	f field.Field[A]
}

// NewVectorField derives the vector space over f.
func NewVectorField[A any](f field.Field[A]) VectorField[A] {
	return VectorField[A]{f: f}
}

// Field returns the scalar field.
func (vf VectorField[A]) Field() field.Field[A] { return vf.f }

// Add returns x + y. Returns ErrLengthMismatch when lengths differ.
func (vf VectorField[A]) Add(x, y Vector[A]) (Vector[A], error) {
	return ZipWith(x, y, vf.f.Add)
}

// Sub returns x - y. Returns ErrLengthMismatch when lengths differ.
func (vf VectorField[A]) Sub(x, y Vector[A]) (Vector[A], error) {
	return ZipWith(x, y, vf.f.Sub)
}

// ScalarMul returns a·x.
func (vf VectorField[A]) ScalarMul(a A, x Vector[A]) Vector[A] {
	return Map(x, func(xi A) A { return vf.f.Mul(xi, a) })
}

// Zero returns the zero vector of the given length (ErrBadShape if negative).
func (vf VectorField[A]) Zero(length int) (Vector[A], error) {
	return FromLength(length, vf.f.Zero())
}

// ScalarOne returns the multiplicative identity of the scalar field.
func (vf VectorField[A]) ScalarOne() A { return vf.f.One() }

// Neg returns -x.
func (vf VectorField[A]) Neg(x Vector[A]) Vector[A] {
	zero := vf.f.Zero()
	return Map(x, func(xi A) A { return vf.f.Sub(zero, xi) })
}

// Dot returns Σ x[i]·y[i]. Returns ErrLengthMismatch when lengths differ.
// The dot of two empty vectors is Zero.
func (vf VectorField[A]) Dot(x, y Vector[A]) (A, error) {
	prod, err := ZipWith(x, y, vf.f.Mul)
	if err != nil {
		var zero A
		return zero, vectorErrorf(opDot, err)
	}

	return field.Fold(field.SumMonoid(vf.f), prod.data), nil
}

// RealVectors is the vector space over field.Real.
var RealVectors = NewVectorField[float64](field.Real{})

// ComplexVectors is the vector space over field.ComplexField.
var ComplexVectors = NewVectorField[field.Complex](field.ComplexField{})
