// SPDX-License-Identifier: MIT

// Package measure - measures with a density on a bounded interval.
//
// Integrals are evaluated with fixed-order Gauss-Legendre quadrature, which
// is exact for polynomial integrands of degree <= 2n-1.
package measure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// density integrates f·pdf over [lo, hi] with n Legendre nodes.
type density struct {
	pdf    func(float64) float64
	lo, hi float64
	n      int
}

func (d density) Integrate(f func(float64) float64) float64 {
	return quad.Fixed(func(x float64) float64 { return f(x) * d.pdf(x) }, d.lo, d.hi, d.n, nil, 1)
}

// Density returns the measure with density pdf on [lo, hi], integrated
// with n quadrature nodes.
//
// Errors:
//   - ErrBadInterval when lo >= hi or a bound is NaN/±Inf.
//   - ErrBadNodes when n < 1.
func Density(pdf func(float64) float64, lo, hi float64, n int) (Measure[float64], error) {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return nil, measureErrorf(opDensity, fmt.Errorf("[%g, %g]: %w", lo, hi, ErrBadInterval))
	}
	if n < 1 {
		return nil, measureErrorf(opDensity, ErrBadNodes)
	}

	return density{pdf: pdf, lo: lo, hi: hi, n: n}, nil
}

// ContinuousUniform is Density with pdf 1/(hi-lo).
func ContinuousUniform(lo, hi float64, n int) (Measure[float64], error) {
	w := 1 / (hi - lo)
	return Density(func(float64) float64 { return w }, lo, hi, n)
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
