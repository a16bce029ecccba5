// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations MUST return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency.
// ERROR PRIORITY: shape -> dimension mismatch -> index.

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates that data or operands do not agree with
	// the declared or required shape (From2D, Add/Sub, Mul where a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned by Inverse and Solve when elimination finds a
	// column with no non-zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation name constants for unified error wrapping.
const (
	opFrom2D   = "From2D"
	opAt       = "At"
	opRow      = "Row"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opIdentity = "Identity"
	opZero     = "Zero"
	opInverse  = "Inverse"
	opSolve    = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
