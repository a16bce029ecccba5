// SPDX-License-Identifier: MIT

// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..." and wrapped with an
// operation tag at the detection site; match with errors.Is.
package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested length is negative.
	ErrBadShape = errors.New("vector: invalid shape")

	// ErrLengthMismatch indicates that a declared length disagrees with the
	// data, or that two operands have different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// Operation tags for error wrapping.
const (
	opFromSlice  = "FromSlice"
	opFromLength = "FromLength"
	opZipWith    = "ZipWith"
	opAt         = "At"
	opDot        = "Dot"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
