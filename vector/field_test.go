// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/vector"
	"github.com/stretchr/testify/require"
)

// checkVectorSpaceLaws asserts the identity, commutativity and scalar-unit
// laws for every pair of samples drawn from vs.
func checkVectorSpaceLaws[A any](t *testing.T, vs vector.VectorField[A], eq func(x, y A) bool, samples []vector.Vector[A]) {
	t.Helper()
	for _, v := range samples {
		zero, err := vs.Zero(v.Len())
		require.NoError(t, err)

		withZero, err := vs.Add(v, zero)
		require.NoError(t, err)
		require.True(t, vector.Equal(eq, v, withZero), "v + 0 = v")

		require.True(t, vector.Equal(eq, v, vs.ScalarMul(vs.ScalarOne(), v)), "1·v = v")

		self, err := vs.Sub(v, v)
		require.NoError(t, err)
		require.True(t, vector.Equal(eq, zero, self), "v - v = 0")

		for _, w := range samples {
			if w.Len() != v.Len() {
				_, err = vs.Add(v, w)
				require.ErrorIs(t, err, vector.ErrLengthMismatch)
				continue
			}
			vw, err := vs.Add(v, w)
			require.NoError(t, err)
			wv, err := vs.Add(w, v)
			require.NoError(t, err)
			require.True(t, vector.Equal(eq, vw, wv), "v + w = w + v")
		}
	}
}

// TestRealVectorSpaceLaws checks the laws over float64.
func TestRealVectorSpaceLaws(t *testing.T) {
	checkVectorSpaceLaws(t, vector.RealVectors, field.RealEq.Equals, []vector.Vector[float64]{
		vector.Of[float64](),
		vector.Of(1.5),
		vector.Of(1.0, -2, 3),
		vector.Of(0.25, 4, -8),
	})
}

// TestComplexVectorSpaceLaws checks the laws over ℂ.
func TestComplexVectorSpaceLaws(t *testing.T) {
	c := field.NewComplex
	checkVectorSpaceLaws(t, vector.ComplexVectors, field.ComplexEq.Equals, []vector.Vector[field.Complex]{
		vector.Of(c(1, 1), c(0, -2)),
		vector.Of(c(3, 4), c(-1, 0)),
		vector.Of(c(0, 1)),
	})
}

// TestPrimeVectorSpaceLaws checks the laws over GF(101).
func TestPrimeVectorSpaceLaws(t *testing.T) {
	f, err := field.NewPrimeField64(101)
	require.NoError(t, err)
	vs := vector.NewVectorField[uint256.Int](f)
	e := f.Elem

	checkVectorSpaceLaws(t, vs, f.Eq().Equals, []vector.Vector[uint256.Int]{
		vector.Of(e(1), e(100), e(50)),
		vector.Of(e(99), e(2), e(0)),
		vector.Of(e(7)),
	})

	// 100 + 2 = 1 mod 101
	sum, err := vs.Add(vector.Of(e(100)), vector.Of(e(2)))
	require.NoError(t, err)
	require.Equal(t, []uint256.Int{e(1)}, sum.Slice())
}

// TestScalarMulNegDot covers the derived operations beyond the core laws.
func TestScalarMulNegDot(t *testing.T) {
	vs := vector.RealVectors
	v := vector.Of(1.0, 2, 3)

	require.Equal(t, []float64{2, 4, 6}, vs.ScalarMul(2, v).Slice())
	require.Equal(t, []float64{-1, -2, -3}, vs.Neg(v).Slice())

	d, err := vs.Dot(v, vector.Of(4.0, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	d, err = vs.Dot(vector.Of[float64](), vector.Of[float64]())
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	_, err = vs.Dot(v, vector.Of(1.0))
	require.ErrorIs(t, err, vector.ErrLengthMismatch)

	_, err = vs.Zero(-1)
	require.ErrorIs(t, err, vector.ErrBadShape)

	require.Equal(t, 1.0, vs.ScalarOne())
	require.IsType(t, field.Real{}, vs.Field())
}

// TestComplexScalarMul checks i·(1, i) = (i, -1).
func TestComplexScalarMul(t *testing.T) {
	c := field.NewComplex
	got := vector.ComplexVectors.ScalarMul(c(0, 1), vector.Of(c(1, 0), c(0, 1)))
	require.Equal(t, []field.Complex{c(0, 1), c(-1, 0)}, got.Slice())
}
