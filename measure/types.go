// SPDX-License-Identifier: MIT

// Package measure: the Measure contract and its variants.
package measure

// Measure is a generalized expectation over values of type A.
// Integrate must be linear in f and must not have side effects.
type Measure[A any] interface {
	Integrate(f func(A) float64) float64
}

// Func adapts a plain expectation function to Measure. Use it for
// distributions whose expectations are available in closed form.
type Func[A any] func(f func(A) float64) float64

// Integrate calls fn(f).
func (fn Func[A]) Integrate(f func(A) float64) float64 { return fn(f) }

// point is the Dirac mass at a.
type point[A any] struct {
	a A
}

func (p point[A]) Integrate(f func(A) float64) float64 { return f(p.a) }

// discrete is Σ pmf(x)·f(x) over a finite support.
type discrete[A any] struct {
	pmf     func(A) float64
	support []A // private copy
}

func (d discrete[A]) Integrate(f func(A) float64) float64 {
	var sum float64
	for _, x := range d.support {
		sum += d.pmf(x) * f(x)
	}

	return sum
}

// mapped is the pushforward of m along f.
type mapped[A, B any] struct {
	m Measure[A]
	f func(A) B
}

func (mp mapped[A, B]) Integrate(g func(B) float64) float64 {
	return mp.m.Integrate(func(a A) float64 { return g(mp.f(a)) })
}

// applied integrates a measure of functions against a measure of arguments.
type applied[A, B any] struct {
	mf Measure[func(A) B]
	ma Measure[A]
}

func (ap applied[A, B]) Integrate(g func(B) float64) float64 {
	return ap.mf.Integrate(func(k func(A) B) float64 {
		return ap.ma.Integrate(func(a A) float64 { return g(k(a)) })
	})
}

// chained is the monadic bind of m with f.
type chained[A, B any] struct {
	m Measure[A]
	f func(A) Measure[B]
}

func (ch chained[A, B]) Integrate(g func(B) float64) float64 {
	return ch.m.Integrate(func(a A) float64 { return ch.f(a).Integrate(g) })
}

// scaled multiplies every integral of m by k.
type scaled[A any] struct {
	m Measure[A]
	k float64
}

func (s scaled[A]) Integrate(f func(A) float64) float64 { return s.k * s.m.Integrate(f) }
