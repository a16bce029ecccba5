// SPDX-License-Identifier: MIT

// Package measure represents distributions (or any linear functional) as
// generalized expectations.
//
// 🚀 What is a Measure?
//
//	A Measure[A] answers one question: "given a measurement f: A → float64,
//	what is its integral?". It never materializes the distribution, so the
//	same interface covers
//	  • point masses                 – Of(a)
//	  • finite supports with weights – FromMassFunction(pmf, support), Uniform
//	  • densities on an interval     – Density(pdf, lo, hi, n)  
//	  • any closed-form expectation  – Func(func(f) float64)
//
// ✨ Composition (functor / applicative / monad):
//   - Map(m, f)     pushes f through m:           ∫g d(Map m f)   = ∫(g∘f) dm
//   - Ap(mf, ma)    independent product:          ∫g d(Ap mf ma)  = ∫∫ g(k(a)) dma dmf
//   - Chain(m, f)   bind / mixture:               ∫g d(Chain m f) = ∫ (∫g d f(a)) dm
//   - Integrate(m, f) is the only elimination operation.
//
// Laws (checked in tests under integration):
//
//	Chain(m, Of) ≡ m;  Chain(Of(a), f) ≡ f(a);  Map(m, f) ≡ Chain(m, Of∘f);
//	Chain(Chain(m, f), g) ≡ Chain(m, a ↦ Chain(f(a), g)).
//
// Every Measure is an immutable value; composition allocates only the
// small wrapper that closes over its operands. No operation has side
// effects, so measures are safe to share across goroutines.
package measure
