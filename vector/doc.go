// SPDX-License-Identifier: MIT

// Package vector provides immutable fixed-length vectors over any element
// type, and the vector space derived from any field.Field.
//
// Shape safety:
//
//	A Vector records its length, and that length is always measured from
//	the backing slice at construction time. No constructor trusts a
//	caller-declared length without checking it:
//	  • FromSlice(n, data) fails with ErrLengthMismatch when len(data) != n
//	  • Of(data...)        measures the data
//	  • FromLength(n, a)   broadcasts a into n slots
//
// Operations that combine two vectors (ZipWith, VectorField.Add/Sub/Dot)
// pair elements positionally and fail with ErrLengthMismatch rather than
// silently producing a wrong-length result. MergeLengths is the comma-ok
// check for callers that want to branch before combining.
//
// Vector spaces:
//
//	vs := vector.NewVectorField[float64](field.Real{})
//	sum, err := vs.Add(vector.Of(1.0, 2), vector.Of(3.0, 4))
//
// RealVectors and ComplexVectors are ready-made spaces over field.Real and
// field.ComplexField.
//
// Vectors are never mutated after construction; input and output slices
// are copied, so values are safe to share across goroutines.
package vector
