// SPDX-License-Identifier: MIT

// Package field describes algebraic fields as explicit capability values.
//
// 🚀 What is a Field here?
//
//	A Field[A] is a record of operations over values of type A:
//	  • Add, Mul        – associative, commutative, with identities Zero/One
//	  • Sub, Div        – inverses of Add and Mul (Div undefined for Zero)
//	  • Mod, Degree     – Euclidean-ring surface kept for interface uniformity
//
// Generic code (vector spaces, matrix algebra) never inspects A directly;
// it receives a Field[A] and uses only the laws above.
//
// ✨ Instances shipped with the package:
//   - Real         – float64 arithmetic
//   - ComplexField – pairs (r, i) of float64 with the usual complex rules
//   - PrimeField   – GF(p) over 256-bit unsigned integers
//
// Alongside the fields the package provides the small records the
// instances are assembled from: Semigroup, Monoid and Eq.
//
// Failure semantics:
//
//	Field operations never return errors and never panic on user input.
//	ComplexField.Div by (0,0) yields NaN/Inf components; guard the divisor
//	yourself. PrimeField.Div by zero yields zero.
//
// Usage:
//
//	import "github.com/katalvlaran/lvlalg/field"
//
//	var f field.Field[field.Complex] = field.ComplexField{}
//	z := f.Div(field.NewComplex(1, 2), field.NewComplex(3, 4))
//	ok := field.ApproxEqual(f.Mul(z, field.NewComplex(3, 4)), field.NewComplex(1, 2))
//
// All values are immutable, so every instance is safe for concurrent use.
package field
