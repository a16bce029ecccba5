// SPDX-License-Identifier: MIT

// Package matrix - validating constructor and accessors.
//
// Purpose:
//   - From2D is the only public path from caller data to a Matrix; it
//     validates the declared shape before any row is wrapped.
//   - Accessors return errors instead of panicking on bad indices.
//   - Rows are stored as vector.Vector values, so the per-row length
//     invariant is carried by the vector package itself.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// From2D builds a rows×cols matrix from nested slices.
//
// Implementation:
//   - Stage 1: ValidateShape(rows, cols); negative dimensions → ErrBadShape.
//   - Stage 2: ValidateData; len(data) != rows or any len(row) != cols →
//     ErrDimensionMismatch.
//   - Stage 3: wrap every row as a vector.Vector of length cols (copied).
//
// The returned error is the "absent" marker: on failure the Matrix is the
// zero value and must not be used.
func From2D[A any](rows, cols int, data [][]A) (Matrix[A], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return Matrix[A]{}, matrixErrorf(opFrom2D, err)
	}
	if err := ValidateData(rows, cols, data); err != nil {
		return Matrix[A]{}, matrixErrorf(opFrom2D, err)
	}

	vs := make([]vector.Vector[A], rows)
	for i, row := range data {
		v, err := vector.FromSlice(cols, row)
		if err != nil {
			return Matrix[A]{}, matrixErrorf(opFrom2D, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		vs[i] = v
	}

	return Matrix[A]{r: rows, c: cols, data: vs}, nil
}

// fromTrusted wraps rows already known to be rows×cols.
// Callers own data and must not retain it.
func fromTrusted[A any](rows, cols int, data [][]A) Matrix[A] {
	vs := make([]vector.Vector[A], rows)
	for i, row := range data {
		vs[i] = vector.Of(row...)
	}

	return Matrix[A]{r: rows, c: cols, data: vs}
}

// At returns the element at (i, j) or ErrOutOfRange.
func (m Matrix[A]) At(i, j int) (A, error) {
	var zero A
	if err := ValidateIndex(i, m.r); err != nil {
		return zero, matrixErrorf(opAt, fmt.Errorf("row %d: %w", i, err))
	}
	if err := ValidateIndex(j, m.c); err != nil {
		return zero, matrixErrorf(opAt, fmt.Errorf("col %d: %w", j, err))
	}

	return m.data[i].At(j)
}

// Row returns row i as a vector of length Cols(), or ErrOutOfRange.
func (m Matrix[A]) Row(i int) (vector.Vector[A], error) {
	if err := ValidateIndex(i, m.r); err != nil {
		return vector.Vector[A]{}, matrixErrorf(opRow, err)
	}

	return m.data[i], nil
}

// ToSlices returns a deep copy of the elements as nested slices.
func (m Matrix[A]) ToSlices() [][]A {
	out := make([][]A, m.r)
	for i, row := range m.data {
		out[i] = row.Slice()
	}

	return out
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (m Matrix[A]) String() string {
	var sb strings.Builder
	for _, row := range m.data {
		sb.WriteString(_fmtRowOpen)
		for j, x := range row.Slice() {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Map applies f to every element, preserving shape.
func Map[A, B any](m Matrix[A], f func(A) B) Matrix[B] {
	vs := make([]vector.Vector[B], m.r)
	for i, row := range m.data {
		vs[i] = vector.Map(row, f)
	}

	return Matrix[B]{r: m.r, c: m.c, data: vs}
}

// Transpose returns mᵀ (cols×rows). The input is never mutated.
func Transpose[A any](m Matrix[A]) Matrix[A] {
	src := m.ToSlices()
	out := make([][]A, m.c)
	for j := range out {
		out[j] = make([]A, m.r)
		for i := 0; i < m.r; i++ {
			out[j][i] = src[i][j]
		}
	}

	return fromTrusted(m.c, m.r, out)
}

// Equal reports whether a and b have the same shape and eq holds elementwise.
func Equal[A any](eq func(x, y A) bool, a, b Matrix[A]) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !vector.Equal(eq, a.data[i], b.data[i]) {
			return false
		}
	}

	return true
}
