// SPDX-License-Identifier: MIT

// Package ndarray provides Array, a strided n-dimensional view over a flat
// buffer.
//
// Purpose:
//   - Pair a data slice with shape, strides, offset and order, the way dense
//     array libraries describe memory layout.
//   - Address elements by subscripts (At/Set) or by linear view index
//     (Get/Put) through the index package conversions.
//   - Derive no-copy views: Transpose reverses shape and strides, Flip negates
//     one stride and moves the offset.
//
// Safety:
//   - Public accessors return errors instead of panicking; sentinels are
//     matched with errors.Is.
//   - Views share storage with their base: writes through one are visible
//     through the other.
//
// Interop:
//   - FromNested / ToNested convert to and from nested.Value.
//   - ToDense / FromDense convert 2-D float64 arrays to and from gonum's mat.
//
// Complexity quicksheet:
//   - New: O(ndims); FromNested: O(numel); At/Set/Get/Put: O(ndims);
//     Transpose/Flip: O(ndims); ToSlice/Clone: O(numel·ndims).
package ndarray
