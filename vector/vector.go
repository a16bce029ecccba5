// SPDX-License-Identifier: MIT

// Package vector - the Vector type and its shape-checked constructors.
//
// Complexity quicksheet:
//   - Of/FromSlice/FromLength/Slice/Map/ZipWith: O(n) time and space.
//   - Len/At/MergeLengths: O(1).
package vector

import (
	"fmt"
	"strings"
)

// Vector is an immutable ordered sequence of exactly Len() elements.
// The zero value is the empty vector.
type Vector[A any] struct {
	data []A // private copy; never aliased with caller memory
	n    int // recorded shape, always len(data)
}

// wrap takes ownership of data and records its measured length.
// Callers must not retain data.
func wrap[A any](data []A) Vector[A] {
	return Vector[A]{data: data, n: len(data)}
}

// Of builds a vector from data; its length is len(data).
func Of[A any](data ...A) Vector[A] {
	return wrap(append([]A(nil), data...))
}

// FromSlice builds a vector that is declared to have the given length.
// The declaration is checked against the data:
//   - ErrBadShape when length < 0,
//   - ErrLengthMismatch when len(data) != length.
//
// data is copied.
func FromSlice[A any](length int, data []A) (Vector[A], error) {
	if length < 0 {
		return Vector[A]{}, vectorErrorf(opFromSlice, ErrBadShape)
	}
	if len(data) != length {
		return Vector[A]{}, vectorErrorf(opFromSlice,
			fmt.Errorf("declared %d, got %d: %w", length, len(data), ErrLengthMismatch))
	}

	return Of(data...), nil
}

// FromLength broadcasts value into a vector of the given length.
// Returns ErrBadShape when length < 0.
func FromLength[A any](length int, value A) (Vector[A], error) {
	if length < 0 {
		return Vector[A]{}, vectorErrorf(opFromLength, ErrBadShape)
	}
	data := make([]A, length)
	for i := range data {
		data[i] = value
	}

	return wrap(data), nil
}

// Len returns the recorded length.
func (v Vector[A]) Len() int { return v.n }

// At returns the i-th element or ErrOutOfRange.
func (v Vector[A]) At(i int) (A, error) {
	if i < 0 || i >= v.n {
		var zero A
		return zero, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, v.n, ErrOutOfRange))
	}

	return v.data[i], nil
}

// Slice returns a fresh copy of the elements.
func (v Vector[A]) Slice() []A {
	return append(make([]A, 0, v.n), v.data...)
}

// ToSlice projects v back to a plain slice (a copy).
func ToSlice[A any](v Vector[A]) []A { return v.Slice() }

// String formats v as "[a, b, c]".
func (v Vector[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Map applies f to every element, preserving length.
func Map[A, B any](v Vector[A], f func(A) B) Vector[B] {
	out := make([]B, v.n)
	for i, x := range v.data {
		out[i] = f(x)
	}

	return wrap(out)
}

// ZipWith combines a and b positionally: out[i] = f(a[i], b[i]).
// Returns ErrLengthMismatch when the lengths differ.
func ZipWith[A, B, C any](a Vector[A], b Vector[B], f func(A, B) C) (Vector[C], error) {
	if a.n != b.n {
		return Vector[C]{}, vectorErrorf(opZipWith,
			fmt.Errorf("%d vs %d: %w", a.n, b.n, ErrLengthMismatch))
	}
	out := make([]C, a.n)
	for i := range out {
		out[i] = f(a.data[i], b.data[i])
	}

	return wrap(out), nil
}

// MergeLengths returns a and b unchanged with ok == true when their
// recorded lengths are equal. Otherwise it returns zero vectors and false.
func MergeLengths[A, B any](a Vector[A], b Vector[B]) (Vector[A], Vector[B], bool) {
	if a.n != b.n {
		return Vector[A]{}, Vector[B]{}, false
	}

	return a, b, true
}

// Equal reports whether a and b have the same length and eq holds pairwise.
func Equal[A any](eq func(x, y A) bool, a, b Vector[A]) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}

	return true
}
