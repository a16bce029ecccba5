// SPDX-License-Identifier: MIT

// Package field - GF(p) over 256-bit unsigned integers.
//
// Purpose:
//   - Give generic code an exact (rounding-free) field to work over.
//   - Keep elements as uint256.Int values so PrimeField elements are
//     comparable with == and copied by value like every other field element.
//
// Contract:
//   - The modulus must be prime; only p >= 2 is checked.
//   - Inputs need not be reduced; every result is reduced into [0, p).
//
// Complexity quicksheet:
//   - Add/Sub/Mul: O(1) word arithmetic; Div: O(log p) multiplications.
package field

import (
	"fmt"

	"github.com/holiman/uint256"
)

// PrimeField is the finite field of integers modulo a prime p.
type PrimeField struct {
	p uint256.Int
}

// Compile-time assertion.
var _ Field[uint256.Int] = PrimeField{}

// NewPrimeField builds GF(p). Returns ErrBadModulus when p < 2.
// Primality is the caller's contract: with a composite p, Div of a
// non-unit is meaningless.
func NewPrimeField(p *uint256.Int) (PrimeField, error) {
	if p == nil || p.Lt(uint256.NewInt(2)) {
		return PrimeField{}, fmt.Errorf("NewPrimeField: %w", ErrBadModulus)
	}

	return PrimeField{p: *p}, nil
}

// NewPrimeField64 is NewPrimeField for moduli that fit in a uint64.
func NewPrimeField64(p uint64) (PrimeField, error) {
	return NewPrimeField(uint256.NewInt(p))
}

// Modulus returns p.
func (f PrimeField) Modulus() uint256.Int { return f.p }

// Elem returns v mod p.
func (f PrimeField) Elem(v uint64) uint256.Int {
	return f.reduce(*uint256.NewInt(v))
}

// reduce maps x into [0, p).
func (f PrimeField) reduce(x uint256.Int) uint256.Int {
	var z uint256.Int
	z.Mod(&x, &f.p)
	return z
}

func (f PrimeField) Add(x, y uint256.Int) uint256.Int {
	var z uint256.Int
	z.AddMod(&x, &y, &f.p)
	return z
}

func (f PrimeField) Mul(x, y uint256.Int) uint256.Int {
	var z uint256.Int
	z.MulMod(&x, &y, &f.p)
	return z
}

// Sub returns x - y mod p without leaving [0, p).
func (f PrimeField) Sub(x, y uint256.Int) uint256.Int {
	x, y = f.reduce(x), f.reduce(y)
	var z uint256.Int
	if x.Lt(&y) {
		var d uint256.Int
		d.Sub(&y, &x)
		z.Sub(&f.p, &d)
		return z
	}
	z.Sub(&x, &y)
	return z
}

// Div returns x · y^(p-2) mod p (Fermat inversion).
// Division by zero returns Zero; callers guard the divisor.
func (f PrimeField) Div(x, y uint256.Int) uint256.Int {
	y = f.reduce(y)
	if y.IsZero() {
		return f.Zero()
	}
	var e uint256.Int
	e.Sub(&f.p, uint256.NewInt(2))

	return f.Mul(x, f.pow(y, e))
}

// pow computes base^e mod p by square-and-multiply, low bit first.
func (f PrimeField) pow(base, e uint256.Int) uint256.Int {
	result := f.One()
	for !e.IsZero() {
		if e[0]&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		e.Rsh(&e, 1)
	}

	return result
}

func (f PrimeField) Zero() uint256.Int { return uint256.Int{} }

// One is 1 mod p (p >= 2, so always 1).
func (f PrimeField) One() uint256.Int { return *uint256.NewInt(1) }

// Mod always returns Zero: every non-zero element of a field is a unit.
func (f PrimeField) Mod(_, _ uint256.Int) uint256.Int { return uint256.Int{} }

// Degree is 0 for zero (mod p) and 1 otherwise.
func (f PrimeField) Degree(x uint256.Int) uint {
	x = f.reduce(x)
	if x.IsZero() {
		return 0
	}

	return 1
}

// Eq compares elements after reduction mod p.
func (f PrimeField) Eq() Eq[uint256.Int] {
	return Eq[uint256.Int]{Equals: func(x, y uint256.Int) bool {
		x, y = f.reduce(x), f.reduce(y)
		return x.Eq(&y)
	}}
}
