// SPDX-License-Identifier: MIT
// Package field_test contains unit tests for the Complex field instance.
package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/stretchr/testify/require"
)

var cf field.ComplexField

// complexSamples is a fixed, finite set of operands used across law checks.
var complexSamples = []field.Complex{
	field.NewComplex(0, 0),
	field.NewComplex(1, 0),
	field.NewComplex(0, 1),
	field.NewComplex(3, -4),
	field.NewComplex(-2.5, 0.75),
	field.NewComplex(10, -0.5),
}

// TestComplexFieldIdentities checks Zero/One identities and Sub(x,x)=Zero.
func TestComplexFieldIdentities(t *testing.T) {
	for _, x := range complexSamples {
		require.Equal(t, x, cf.Add(x, cf.Zero()))                        // additive identity
		require.Equal(t, x, cf.Mul(x, cf.One()))                         // multiplicative identity
		require.True(t, field.ComplexEq.Equals(cf.Sub(x, x), cf.Zero())) // self-subtraction
	}
}

// TestComplexFieldCommutativeAssociative checks Add/Mul laws on all sample triples.
func TestComplexFieldCommutativeAssociative(t *testing.T) {
	for _, x := range complexSamples {
		for _, y := range complexSamples {
			require.Equal(t, cf.Add(x, y), cf.Add(y, x))
			require.Equal(t, cf.Mul(x, y), cf.Mul(y, x))
			for _, z := range complexSamples {
				require.True(t, field.ApproxEqual(cf.Add(cf.Add(x, y), z), cf.Add(x, cf.Add(y, z))))
				require.True(t, field.ApproxEqual(cf.Mul(cf.Mul(x, y), z), cf.Mul(x, cf.Mul(y, z))))
			}
		}
	}
}

// TestComplexMul verifies (1+2i)(3+4i) = -5+10i.
func TestComplexMul(t *testing.T) {
	got := cf.Mul(field.NewComplex(1, 2), field.NewComplex(3, 4))
	require.Equal(t, field.NewComplex(-5, 10), got)
	require.Equal(t, field.FromComplex128((1+2i)*(3+4i)), got) // agrees with builtin complex128
}

// TestComplexDivInvertsMul checks Mul(Div(x,y),y) ≈ x for every non-zero y.
func TestComplexDivInvertsMul(t *testing.T) {
	for _, x := range complexSamples {
		for _, y := range complexSamples {
			if y.IsZero() {
				continue // division by (0,0) is out of contract
			}
			back := cf.Mul(cf.Div(x, y), y)
			require.Truef(t, field.ApproxEqual(x, back), "x=%v y=%v back=%v", x, y, back)
		}
	}
}

// TestComplexDivByZero documents the NaN/Inf outcome of dividing by (0,0).
func TestComplexDivByZero(t *testing.T) {
	q := cf.Div(field.NewComplex(1, 1), cf.Zero())
	require.True(t, math.IsInf(q.R, 0) || math.IsNaN(q.R))
	require.True(t, math.IsInf(q.I, 0) || math.IsNaN(q.I))

	q = cf.Div(cf.Zero(), cf.Zero())
	require.True(t, math.IsNaN(q.R)) // 0/0
	require.True(t, math.IsNaN(q.I))
}

// TestComplexModDegreeStubs pins the documented no-op behavior.
func TestComplexModDegreeStubs(t *testing.T) {
	for _, x := range complexSamples {
		require.Equal(t, cf.Zero(), cf.Mod(x, field.NewComplex(2, 3)))
		require.Equal(t, uint(1), cf.Degree(x))
	}
}

// TestComplexMonoids checks the Empty elements and Fold over the monoids.
func TestComplexMonoids(t *testing.T) {
	require.Equal(t, field.NewComplex(0, 0), field.ComplexMonoidSum.Empty)
	require.Equal(t, field.NewComplex(1, 0), field.ComplexMonoidProduct.Empty)

	xs := []field.Complex{field.NewComplex(1, 1), field.NewComplex(2, -1), field.NewComplex(0, 3)}
	require.Equal(t, field.NewComplex(3, 3), field.Fold(field.ComplexMonoidSum, xs))
	require.Equal(t, field.NewComplex(1, 0), field.Fold(field.ComplexMonoidProduct, nil)) // empty fold

	// i·i·i·i = 1
	i := field.NewComplex(0, 1)
	require.Equal(t, field.NewComplex(1, 0), field.Fold(field.ComplexMonoidProduct, []field.Complex{i, i, i, i}))

	// subtraction is not associative: (a-b)-c != a-(b-c)
	a, b, c := xs[0], xs[1], xs[2]
	sub := field.ComplexMagmaSub.Concat
	require.NotEqual(t, sub(sub(a, b), c), sub(a, sub(b, c)))
}

// TestComplexHelpers covers Conj, Abs, String and the complex128 bridge.
func TestComplexHelpers(t *testing.T) {
	z := field.NewComplex(3, -4)
	require.Equal(t, field.NewComplex(3, 4), z.Conj())
	require.InDelta(t, 5.0, z.Abs(), 1e-12)
	require.Equal(t, "(3-4i)", z.String())
	require.Equal(t, complex(3, -4), z.Complex128())
	require.True(t, field.ComplexEq.Equals(z, field.FromComplex128(z.Complex128())))
	require.False(t, field.ComplexEq.Equals(z, z.Conj()))
}

// TestApproxEqualEpsilon checks the tolerance option and its validation.
func TestApproxEqualEpsilon(t *testing.T) {
	a, b := field.NewComplex(1, 1), field.NewComplex(1.001, 1)
	require.False(t, field.ApproxEqual(a, b))                         // default eps is tight
	require.True(t, field.ApproxEqual(a, b, field.WithEpsilon(1e-2))) // relaxed
	require.False(t, field.ApproxEqual(a, field.NewComplex(math.NaN(), 1)))

	require.PanicsWithValue(t, "field: WithEpsilon: eps must be finite, non-negative", func() {
		field.WithEpsilon(-1)
	})
	require.Panics(t, func() { field.WithEpsilon(math.Inf(1)) })
}
