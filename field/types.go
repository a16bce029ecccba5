// SPDX-License-Identifier: MIT

// Package field: capability records shared by every instance.
package field

// Field is a set with addition, multiplication and their inverses.
//
// Laws every implementation must honour:
//   - Add and Mul are associative and commutative.
//   - Zero() is the identity of Add, One() is the identity of Mul.
//   - Sub(x, x) == Zero().
//   - Mul(Div(x, y), y) == x whenever y != Zero().
//
// Mod and Degree complete the Euclidean-ring shape. For a true field every
// non-zero element is a unit, so most instances define them trivially.
type Field[A any] interface {
	Add(x, y A) A
	Mul(x, y A) A
	Sub(x, y A) A
	Div(x, y A) A
	Zero() A
	One() A
	Mod(x, y A) A
	Degree(x A) uint
}

// Magma combines two values with a binary operation and no laws.
type Magma[A any] struct {
	Concat func(x, y A) A
}

// Semigroup combines two values with an associative operation.
type Semigroup[A any] struct {
	Concat func(x, y A) A
}

// Monoid is a Semigroup with an identity element Empty.
type Monoid[A any] struct {
	Semigroup[A]
	Empty A
}

// Eq decides equality of two values.
type Eq[A any] struct {
	Equals func(x, y A) bool
}

// Fold concatenates xs with m, starting from m.Empty.
// An empty slice folds to m.Empty.
func Fold[A any](m Monoid[A], xs []A) A {
	acc := m.Empty
	for _, x := range xs {
		acc = m.Concat(acc, x)
	}

	return acc
}

// SumMonoid returns the additive monoid of f: (Add, Zero).
func SumMonoid[A any](f Field[A]) Monoid[A] {
	return Monoid[A]{Semigroup: Semigroup[A]{Concat: f.Add}, Empty: f.Zero()}
}

// ProductMonoid returns the multiplicative monoid of f: (Mul, One).
func ProductMonoid[A any](f Field[A]) Monoid[A] {
	return Monoid[A]{Semigroup: Semigroup[A]{Concat: f.Mul}, Empty: f.One()}
}
