// SPDX-License-Identifier: MIT

package field

import "math"

// Real is the field of float64 values under ordinary arithmetic.
// Division by zero follows IEEE-754 (±Inf or NaN); no error is signaled.
type Real struct{}

// Compile-time assertion.
var _ Field[float64] = Real{}

func (Real) Add(x, y float64) float64 { return x + y }
func (Real) Mul(x, y float64) float64 { return x * y }
func (Real) Sub(x, y float64) float64 { return x - y }
func (Real) Div(x, y float64) float64 { return x / y }
func (Real) Zero() float64            { return 0 }
func (Real) One() float64             { return 1 }

// Mod returns the floating-point remainder of x/y (math.Mod).
func (Real) Mod(x, y float64) float64 { return math.Mod(x, y) }

// Degree is 0 for zero and 1 for every other value.
func (Real) Degree(x float64) uint {
	if x == 0 {
		return 0
	}

	return 1
}

// RealEq compares float64 values with ==.
var RealEq = Eq[float64]{Equals: func(x, y float64) bool { return x == y }}
