// SPDX-License-Identifier: MIT

// Package strides computes memory-layout metadata for dense n-dimensional
// arrays stored in a flat buffer.
//
// What is here:
//
//   - Numel: total element count of a shape (empty shape ⇒ 1).
//   - Shape2Strides: per-dimension steps for RowMajor or ColumnMajor layout.
//   - Reverse: in-place vector reversal used to build the (shape, strides)
//     pair of a virtual transpose without touching the data.
//   - Strides2Offset: index of the first element when strides are negative.
//   - Iter: subscript iteration in lexicographic or colexicographic order.
//
// Everything is pure integer arithmetic; no function here allocates more
// than the slice it returns, and none keeps state between calls.
//
//	shape   = [3, 2, 2]
//	rowmaj  = [4, 2, 1]   // last index fastest
//	colmaj  = [1, 3, 6]   // first index fastest
package strides
