// SPDX-License-Identifier: MIT

package measure

// Of returns the point mass at a: Integrate(f) == f(a).
func Of[A any](a A) Measure[A] { return point[A]{a: a} }

// FromMassFunction builds the discrete measure Σ pmf(x)·f(x) over support.
// The support is copied; an empty support yields the zero measure.
// pmf need not be normalized.
func FromMassFunction[A any](pmf func(A) float64, support []A) Measure[A] {
	return discrete[A]{pmf: pmf, support: append([]A(nil), support...)}
}

// Uniform puts mass 1/len(support) on every support element.
// An empty support yields the zero measure.
func Uniform[A any](support []A) Measure[A] {
	w := 0.0
	if len(support) > 0 {
		w = 1 / float64(len(support))
	}

	return FromMassFunction(func(A) float64 { return w }, support)
}

// Map pushes f through m without materializing it.
func Map[A, B any](m Measure[A], f func(A) B) Measure[B] {
	return mapped[A, B]{m: m, f: f}
}

// Ap applies a measure of functions to a measure of arguments, assuming
// independence (nested integration, function outermost).
func Ap[A, B any](mf Measure[func(A) B], ma Measure[A]) Measure[B] {
	return applied[A, B]{mf: mf, ma: ma}
}

// Chain binds m with f: the mixture of f(a) weighted by m.
func Chain[A, B any](m Measure[A], f func(A) Measure[B]) Measure[B] {
	return chained[A, B]{m: m, f: f}
}

// Integrate evaluates m at the measurement function f.
func Integrate[A any](m Measure[A], f func(A) float64) float64 {
	return m.Integrate(f)
}

// Total returns the total mass ∫1 dm.
func Total[A any](m Measure[A]) float64 {
	return m.Integrate(func(A) float64 { return 1 })
}

// Probability returns ∫[pred] dm, the mass of the set where pred holds.
func Probability[A any](m Measure[A], pred func(A) bool) float64 {
	return m.Integrate(func(a A) float64 {
		if pred(a) {
			return 1
		}
		return 0
	})
}

// Normalize rescales m to total mass 1. A measure whose total mass is zero,
// NaN or ±Inf cannot be rescaled and is returned unchanged.
func Normalize[A any](m Measure[A]) Measure[A] {
	t := Total(m)
	if t == 0 || !isFinite(t) {
		return m
	}

	return scaled[A]{m: m, k: 1 / t}
}

func identity(x float64) float64 { return x }

// Expectation returns ∫x dm. m is assumed normalized.
func Expectation(m Measure[float64]) float64 {
	return m.Integrate(identity)
}

// Variance returns ∫(x-μ)² dm with μ = Expectation(m). m is assumed normalized.
func Variance(m Measure[float64]) float64 {
	mu := Expectation(m)
	return m.Integrate(func(x float64) float64 {
		d := x - mu
		return d * d
	})
}
