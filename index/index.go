// SPDX-License-Identifier: MIT

package index

import (
	"github.com/katalvlaran/ndflat/strides"
)

// Vind2Bind converts a linear view index into a buffer index.
//
// Implementation:
//   - Stage 1: resolve idx with mode against numel(shape).
//   - Stage 2: peel subscripts off idx, fastest dimension first
//     (last for RowMajor, first for ColumnMajor).
//   - Stage 3: accumulate offset + Σ sub[d]*strides[d].
//
// The result matches direct multi-index addressing of the same view; the
// strides may be negative and need not be contiguous.
//
// Errors:
//   - ErrOutOfBounds when idx cannot be resolved (always for an empty view).
//
// Complexity: O(ndims).
func Vind2Bind(shape, sx []int, offset int, order strides.Order, idx int, mode Mode) (int, error) {
	i, err := mode.resolve(idx, strides.Numel(shape)-1)
	if err != nil {
		return 0, indexErrorf("Vind2Bind", idx, err)
	}

	ind := offset
	if order == strides.ColumnMajor {
		for d := 0; d < len(shape); d++ {
			s := i % shape[d]
			i /= shape[d]
			ind += s * sx[d]
		}

		return ind, nil
	}
	for d := len(shape) - 1; d >= 0; d-- {
		s := i % shape[d]
		i /= shape[d]
		ind += s * sx[d]
	}

	return ind, nil
}

// Bind2Vind converts a buffer index into a linear view index in order.
//
// With a zero offset the buffer and the view are assumed to coincide and the
// resolved index is returned as-is. Otherwise the buffer index is split into
// subscripts by stride magnitude, subscripts along negative strides are
// mirrored, and the subscripts are recombined in order.
//
// Errors:
//   - ErrOutOfBounds when idx cannot be resolved.
//
// Complexity: O(ndims).
func Bind2Vind(shape, sx []int, offset int, order strides.Order, idx int, mode Mode) (int, error) {
	i, err := mode.resolve(idx, strides.Numel(shape)-1)
	if err != nil {
		return 0, indexErrorf("Bind2Vind", idx, err)
	}
	if offset == 0 {
		return i, nil
	}

	sub := make([]int, len(shape))
	bufferSubs(shape, sx, order, i, sub)

	return combine(shape, order, sub), nil
}

// Ind2Sub converts a linear index into subscripts.
//
// With a zero offset idx is a view index in order; otherwise it is a buffer
// index and is decomposed the same way as in Bind2Vind.
//
// Errors:
//   - ErrOutOfBounds when idx cannot be resolved.
func Ind2Sub(shape, sx []int, offset int, order strides.Order, idx int, mode Mode) ([]int, error) {
	out := make([]int, len(shape))
	if err := Ind2SubInto(shape, sx, offset, order, idx, mode, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Ind2SubInto is Ind2Sub writing into out, which must have len(shape) entries.
func Ind2SubInto(shape, sx []int, offset int, order strides.Order, idx int, mode Mode, out []int) error {
	if len(out) != len(shape) {
		return indexErrorf("Ind2Sub", idx, ErrDimensionMismatch)
	}
	i, err := mode.resolve(idx, strides.Numel(shape)-1)
	if err != nil {
		return indexErrorf("Ind2Sub", idx, err)
	}
	if offset != 0 {
		bufferSubs(shape, sx, order, i, out)
		return nil
	}

	if order == strides.ColumnMajor {
		for d := 0; d < len(shape); d++ {
			out[d] = i % shape[d]
			i /= shape[d]
		}

		return nil
	}
	for d := len(shape) - 1; d >= 0; d-- {
		out[d] = i % shape[d]
		i /= shape[d]
	}

	return nil
}

// Sub2Ind converts subscripts into a buffer index.
//
// Each subscript is resolved against its dimension with modes[d%len(modes)];
// no modes means Throw everywhere. With a zero offset the subscripts address
// the view, so a negative stride contributes its magnitude; otherwise the
// result is offset + Σ sub[d]*strides[d].
//
// Errors:
//   - ErrDimensionMismatch when len(subs) != len(shape).
//   - ErrOutOfBounds when a subscript cannot be resolved.
//
// Complexity: O(ndims).
func Sub2Ind(shape, sx []int, offset int, subs []int, modes ...Mode) (int, error) {
	if len(subs) != len(shape) {
		return 0, indexErrorf("Sub2Ind", len(subs), ErrDimensionMismatch)
	}
	if len(modes) == 0 {
		modes = []Mode{Throw}
	}

	idx := offset
	for d, j := range subs {
		k, err := modes[d%len(modes)].resolve(j, shape[d]-1)
		if err != nil {
			return 0, indexErrorf("Sub2Ind", j, err)
		}
		s := sx[d]
		if s < 0 && offset == 0 {
			idx -= k * s
		} else {
			idx += k * s
		}
	}

	return idx, nil
}

// bufferSubs splits a buffer index into subscripts. Dimensions are visited
// from the slowest to the fastest for the given order, dividing by the stride
// magnitude; a negative stride mirrors the subscript within its dimension.
func bufferSubs(shape, sx []int, order strides.Order, idx int, out []int) {
	split := func(d int) {
		s := sx[d]
		if s < 0 {
			s = -s
		}
		k := 0
		if s != 0 {
			k = idx / s
			idx -= k * s
		}
		if sx[d] < 0 {
			k = shape[d] - 1 - k
		}
		out[d] = k
	}
	if order == strides.ColumnMajor {
		for d := len(shape) - 1; d >= 0; d-- {
			split(d)
		}

		return
	}
	for d := 0; d < len(shape); d++ {
		split(d)
	}
}

// combine folds subscripts into a contiguous view index in order.
func combine(shape []int, order strides.Order, sub []int) int {
	v := 0
	if order == strides.ColumnMajor {
		for d := len(shape) - 1; d >= 0; d-- {
			v = v*shape[d] + sub[d]
		}

		return v
	}
	for d := 0; d < len(shape); d++ {
		v = v*shape[d] + sub[d]
	}

	return v
}
