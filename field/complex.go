// SPDX-License-Identifier: MIT

// Package field - complex numbers as a Field instance.
//
// Purpose:
//   - Provide an immutable Complex value with explicit real/imaginary parts.
//   - Assemble Eq, Semigroup and Monoid records from componentwise rules.
//   - Expose ComplexField so generic code can build vector spaces over ℂ.
//
// Complexity quicksheet:
//   - Every operation is O(1) and allocation-free.
package field

import (
	"math/cmplx"
	"strconv"
)

// Complex is a complex number r + i·i. Arithmetic always returns new values.
type Complex struct {
	R float64 // real part
	I float64 // imaginary part
}

// NewComplex builds r + i·i.
func NewComplex(r, i float64) Complex { return Complex{R: r, I: i} }

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{R: real(z), I: imag(z)} }

// Complex128 converts z into the builtin representation.
func (z Complex) Complex128() complex128 { return complex(z.R, z.I) }

// Conj returns the complex conjugate r - i·i.
func (z Complex) Conj() Complex { return Complex{R: z.R, I: -z.I} }

// Abs returns the modulus |z|.
func (z Complex) Abs() float64 { return cmplx.Abs(z.Complex128()) }

// IsZero reports whether both components are exactly zero.
func (z Complex) IsZero() bool { return z.R == 0 && z.I == 0 }

// String formats z as "(r+ii)", matching fmt's complex128 output.
func (z Complex) String() string {
	return strconv.FormatComplex(z.Complex128(), 'g', -1, 128)
}

// ComplexEq is componentwise real-number equality.
var ComplexEq = Eq[Complex]{
	Equals: func(x, y Complex) bool { return x.R == y.R && x.I == y.I },
}

// ComplexMagmaSub subtracts componentwise. Subtraction is not associative,
// so it is only a Magma.
var ComplexMagmaSub = Magma[Complex]{
	Concat: func(x, y Complex) Complex { return Complex{R: x.R - y.R, I: x.I - y.I} },
}

// ComplexSemigroupSum adds componentwise.
var ComplexSemigroupSum = Semigroup[Complex]{
	Concat: func(x, y Complex) Complex { return Complex{R: x.R + y.R, I: x.I + y.I} },
}

// ComplexSemigroupProduct multiplies: (a+bi)(c+di) = (ac-bd) + (bc+ad)i.
var ComplexSemigroupProduct = Semigroup[Complex]{
	Concat: func(x, y Complex) Complex {
		return Complex{R: x.R*y.R - x.I*y.I, I: x.I*y.R + y.I*x.R}
	},
}

// ComplexMonoidSum is addition with identity (0,0).
var ComplexMonoidSum = Monoid[Complex]{Semigroup: ComplexSemigroupSum, Empty: Complex{}}

// ComplexMonoidProduct is multiplication with identity (1,0).
var ComplexMonoidProduct = Monoid[Complex]{Semigroup: ComplexSemigroupProduct, Empty: Complex{R: 1}}

// ComplexField is the field ℂ.
//
// Div implements (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²).
// Dividing by (0,0) yields NaN/Inf components; callers guard the divisor.
//
// Mod and Degree carry no numeric meaning for ℂ: Mod always returns (0,0)
// and Degree always returns 1. They exist only so ComplexField satisfies
// Field; treat them as no-ops.
type ComplexField struct{}

// Compile-time assertion.
var _ Field[Complex] = ComplexField{}

func (ComplexField) Add(x, y Complex) Complex { return ComplexMonoidSum.Concat(x, y) }
func (ComplexField) Mul(x, y Complex) Complex { return ComplexMonoidProduct.Concat(x, y) }
func (ComplexField) Sub(x, y Complex) Complex { return ComplexMagmaSub.Concat(x, y) }
func (ComplexField) Zero() Complex            { return ComplexMonoidSum.Empty }
func (ComplexField) One() Complex             { return ComplexMonoidProduct.Empty }

func (ComplexField) Div(x, y Complex) Complex {
	den := y.R*y.R + y.I*y.I
	return Complex{
		R: (x.R*y.R + x.I*y.I) / den,
		I: (x.I*y.R - x.R*y.I) / den,
	}
}

// Mod is a stub: always the additive identity.
func (ComplexField) Mod(_, _ Complex) Complex { return ComplexMonoidSum.Empty }

// Degree is a stub: always 1.
func (ComplexField) Degree(_ Complex) uint { return 1 }

// ApproxEqual reports whether x and y agree componentwise within the
// configured tolerance (absolute or relative, see WithEpsilon).
func ApproxEqual(x, y Complex, opts ...Option) bool {
	o := gatherOptions(opts...)
	return approxFloat(x.R, y.R, o.eps) && approxFloat(x.I, y.I, o.eps)
}
