// Package lvlalg is a small generic algebra toolkit: fields, fixed-length
// vectors, fixed-shape matrices and expectation-style measures.
//
// 🚀 What is lvlalg?
//
//	A pure-Go library that brings together:
//		• Fields: reals, complex numbers, GF(p) over 256-bit integers
//		• Vectors: immutable, shape-checked, with a vector space per field
//		• Matrices: validated construction + field-lifted algebra
//		• Measures: distributions as expectation functionals (monadic)
//
// ✨ Why choose lvlalg?
//
//   - Shape-safe – every constructor measures its data; no length lies
//   - Explicit   – fields are values passed to generic code, no registries
//   - Immutable  – every value is safe to share across goroutines
//   - No panics  – user errors come back as sentinel errors (errors.Is)
//
// Everything is organized under five subpackages:
//
//	field/   Field interface, Real, ComplexField, PrimeField, Monoid/Eq records
//	vector/  Vector, ZipWith/MergeLengths, VectorField derived from a Field
//	matrix/  Matrix, From2D validating constructor, Algebra over a Field,
//	         Inverse/Solve by Gauss-Jordan elimination
//	measure/ Measure, Of/Map/Ap/Chain, FromMassFunction, Density
//	stat/    Mean/Variance over a Field, Median/Mode/Histogram, gonum float64
//
// Quick example:
//
//	vs := vector.NewVectorField[float64](field.Real{})
//	sum, err := vs.Add(vector.Of(1.0, 2), vector.Of(3.0, 4)) // [4, 6]
//
// Runnable scenarios live in examples/.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
