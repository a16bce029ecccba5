// SPDX-License-Identifier: MIT

// Package matrix: the Matrix value type.
package matrix

import "github.com/katalvlaran/lvlalg/vector"

// Matrix is an immutable rows×cols table of elements.
//
// Invariants (established by every constructor in this package):
//   - len(data) == r
//   - data[i].Len() == c for every row i
//
// The zero value is the 0×0 matrix.
type Matrix[A any] struct {
	r, c int                // row and column counts (>= 0)
	data []vector.Vector[A] // one vector per row, each of length c
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m Matrix[A]) Rows() int { return m.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (m Matrix[A]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m Matrix[A]) Shape() (int, int) { return m.r, m.c }
