// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape checks used by constructors and kernels.
//  - Return plain sentinel errors tagged with the validator name so call
//    sites can wrap uniformly with matrixErrorf.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows >= 0 and cols >= 0.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateData ensures data has exactly rows rows of exactly cols columns.
// Assumes the shape itself is valid.
func ValidateData[A any](rows, cols int, data [][]A) error {
	if len(data) != rows {
		return validatorErrorf("ValidateData",
			fmt.Errorf("want %d rows, got %d: %w", rows, len(data), ErrDimensionMismatch))
	}
	for i, row := range data {
		if len(row) != cols {
			return validatorErrorf("ValidateData",
				fmt.Errorf("row %d: want %d cols, got %d: %w", i, cols, len(row), ErrDimensionMismatch))
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape[A any](a, b Matrix[A]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
func ValidateMulCompatible[A any](a, b Matrix[A]) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m has as many rows as columns.
func ValidateSquare[A any](m Matrix[A]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures a vector length matches the required size n.
func ValidateVecLen(length, n int) error {
	if length != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
