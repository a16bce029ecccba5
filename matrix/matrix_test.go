// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the validating constructor
// and accessors of Matrix.
package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// mustFrom2D builds a matrix or fails the test.
func mustFrom2D[A any](t *testing.T, rows, cols int, data [][]A) matrix.Matrix[A] {
	t.Helper()
	m, err := matrix.From2D(rows, cols, data)
	require.NoError(t, err)

	return m
}

// TestFrom2DValid ensures a 2×3 matrix is built and its rows equal the input.
func TestFrom2DValid(t *testing.T) {
	data := [][]int{{1, 2, 3}, {4, 5, 6}}
	m := mustFrom2D(t, 2, 3, data)

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, data, m.ToSlices())

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row.Slice())
	require.Equal(t, 3, row.Len())
}

// TestFrom2DMismatch covers every rejection path in a table.
func TestFrom2DMismatch(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		data       [][]int
		want       error
	}{
		{"row length mismatch", 2, 3, [][]int{{1, 2}, {4, 5, 6}}, matrix.ErrDimensionMismatch},
		{"row count mismatch", 3, 3, [][]int{{1, 2, 3}, {4, 5, 6}}, matrix.ErrDimensionMismatch},
		{"too many rows", 1, 3, [][]int{{1, 2, 3}, {4, 5, 6}}, matrix.ErrDimensionMismatch},
		{"last row long", 2, 2, [][]int{{1, 2}, {3, 4, 5}}, matrix.ErrDimensionMismatch},
		{"negative rows", -1, 2, nil, matrix.ErrBadShape},
		{"negative cols", 1, -2, [][]int{{}}, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.From2D(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, 0, m.Rows()) // absent: zero value
			require.Equal(t, 0, m.Cols())
		})
	}
}

// TestFrom2DEmptyShapes allows 0×n and n×0 matrices.
func TestFrom2DEmptyShapes(t *testing.T) {
	m := mustFrom2D[float64](t, 0, 4, nil)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 4, m.Cols())

	m = mustFrom2D(t, 2, 0, [][]float64{{}, {}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestFrom2DCopiesInput ensures later mutation of the source does not leak in.
func TestFrom2DCopiesInput(t *testing.T) {
	data := [][]int{{1, 2}, {3, 4}}
	m := mustFrom2D(t, 2, 2, data)
	data[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	out := m.ToSlices()
	out[1][1] = 42
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

// TestAtRowOutOfRange ensures accessors return ErrOutOfRange instead of panicking.
func TestAtRowOutOfRange(t *testing.T) {
	m := mustFrom2D(t, 2, 2, [][]int{{1, 2}, {3, 4}})

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

// TestMapTransposeString covers the shape-preserving and shape-swapping helpers.
func TestMapTransposeString(t *testing.T) {
	m := mustFrom2D(t, 2, 3, [][]int{{1, 2, 3}, {4, 5, 6}})

	s := matrix.Map(m, strconv.Itoa)
	require.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}}, s.ToSlices())

	mt := matrix.Transpose(m)
	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, mt.ToSlices())

	eq := func(x, y int) bool { return x == y }
	require.True(t, matrix.Equal(eq, m, matrix.Transpose(mt)))
	require.False(t, matrix.Equal(eq, m, mt))

	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())
}
