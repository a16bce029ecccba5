// SPDX-License-Identifier: MIT

// Package matrix provides immutable fixed-shape matrices over any element
// type, and matrix algebra over any field.Field.
//
// 🚀 Shape guarantees
//
//	A Matrix[A] is a sequence of Rows() row vectors, each a vector.Vector[A]
//	of length Cols(). The only way to build one from caller data is From2D,
//	which validates BOTH dimensions before wrapping:
//	  • len(data) must equal rows
//	  • every len(data[i]) must equal cols
//	On any mismatch it returns ErrDimensionMismatch and no matrix.
//
// ✨ Algebra
//
//	NewAlgebra(f) lifts a field into Add, Sub, Scale, Mul, MulVec, Identity
//	and Zero. Kernels validate shapes up front and never mutate operands.
//	Inverse and Solve run Gauss-Jordan elimination using only the field
//	operations plus an Eq to recognise zero pivots; a column without a
//	non-zero pivot yields ErrSingular.
//
// Usage:
//
//	m, err := matrix.From2D(2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})
//	if err != nil { /* errors.Is(err, matrix.ErrDimensionMismatch) */ }
//	alg := matrix.NewAlgebra[float64](field.Real{})
//	mt := matrix.Transpose(m)
//	gram, err := alg.Mul(m, mt) // 2×2
//
// Errors are package sentinels wrapped as "<Op>: <sentinel>"; match them
// with errors.Is. No exported function panics on user input.
//
// Complexity quicksheet:
//   - From2D/ToSlices/Map/Transpose/Add/Sub/Scale: O(r*c).
//   - Mul: O(r*n*c); MulVec: O(r*c).
//   - Inverse: O(n³); Solve: O(n²·(n+1)).
//   - Rows/Cols/Shape/At/Row: O(1).
package matrix
