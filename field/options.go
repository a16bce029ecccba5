// SPDX-License-Identifier: MIT

// Package field: functional configuration for approximate comparisons.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package field

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the absolute and relative tolerance used by ApproxEqual.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "field: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance eps for approximate comparisons.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// approxFloat treats equal infinities as equal and NaN as unequal to anything.
func approxFloat(a, b, eps float64) bool {
	if a == b {
		return true
	}

	return scalar.EqualWithinAbsOrRel(a, b, eps, eps)
}
