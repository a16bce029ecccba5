// SPDX-License-Identifier: MIT

package stat

import (
	"slices"

	"github.com/katalvlaran/lvlalg/field"
)

// Bin is one histogram entry: a distinct value and how often it occurs.
type Bin[A any] struct {
	Value A
	Count int
}

// Histogram lists the distinct values of a sample in ascending order.
type Histogram[A any] []Bin[A]

// Ordered is Statistic plus a total order on A. cmp returns a negative
// number when x < y, zero when equal and a positive number when x > y.
type Ordered[A any] struct {
	Statistic[A]
	cmp func(x, y A) int
}

// NewOrdered derives ordered statistics over f with the order cmp.
func NewOrdered[A any](f field.Field[A], cmp func(x, y A) int) Ordered[A] {
	return Ordered[A]{Statistic: New(f), cmp: cmp}
}

// sorted returns an ascending copy of xs.
func (o Ordered[A]) sorted(xs []A) []A {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, o.cmp)

	return out
}

// Median returns the middle value, or the mean of the two middle values
// when len(xs) is even. Errors: ErrEmptySample.
func (o Ordered[A]) Median(xs []A) (A, error) {
	n := len(xs)
	if n == 0 {
		var zero A
		return zero, statErrorf(opMedian, ErrEmptySample)
	}
	s := o.sorted(xs)
	if n%2 == 1 {
		return s[n/2], nil
	}
	two := o.f.Add(o.f.One(), o.f.One())

	return o.f.Div(o.f.Add(s[n/2-1], s[n/2]), two), nil
}

// Histogram counts each distinct value; values equal under cmp share a bin.
// An empty sample gives an empty histogram.
func (o Ordered[A]) Histogram(xs []A) Histogram[A] {
	var h Histogram[A]
	for _, x := range o.sorted(xs) {
		if last := len(h) - 1; last >= 0 && o.cmp(h[last].Value, x) == 0 {
			h[last].Count++
			continue
		}
		h = append(h, Bin[A]{Value: x, Count: 1})
	}

	return h
}

// Mode returns the most frequent value; ties go to the smallest.
// ok is false for an empty sample.
func (o Ordered[A]) Mode(xs []A) (mode A, ok bool) {
	best := 0
	for _, b := range o.Histogram(xs) {
		if b.Count > best {
			mode, best = b.Value, b.Count
		}
	}

	return mode, best > 0
}

// Min returns the smallest value. ok is false for an empty sample.
func (o Ordered[A]) Min(xs []A) (A, bool) {
	if len(xs) == 0 {
		var zero A
		return zero, false
	}

	return slices.MinFunc(xs, o.cmp), true
}

// Max returns the largest value. ok is false for an empty sample.
func (o Ordered[A]) Max(xs []A) (A, bool) {
	if len(xs) == 0 {
		var zero A
		return zero, false
	}

	return slices.MaxFunc(xs, o.cmp), true
}
