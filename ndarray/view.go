// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ndflat/strides"
)

// Transpose returns a no-copy view with the dimension order reversed.
// Reversing both shape and strides swaps which subscript varies fastest in
// memory, so the order flips as well.
// Complexity: O(ndims).
func (a *Array[T]) Transpose() *Array[T] {
	return &Array[T]{
		data:    a.data,
		shape:   strides.Reverse(slices.Clone(a.shape)),
		strides: strides.Reverse(slices.Clone(a.strides)),
		offset:  a.offset,
		order:   a.order.Flip(),
		mode:    a.mode,
	}
}

// Flip returns a no-copy view with dimension dim traversed backwards.
//
// Errors:
//   - ErrBadDim when dim is outside [0, NDims()).
//
// Complexity: O(ndims).
func (a *Array[T]) Flip(dim int) (*Array[T], error) {
	if dim < 0 || dim >= len(a.shape) {
		return nil, arrayErrorf(ctxFlip, dim, fmt.Errorf("ndims %d: %w", len(a.shape), ErrBadDim))
	}

	sx := slices.Clone(a.strides)
	offset := a.offset
	if a.shape[dim] > 0 {
		offset += (a.shape[dim] - 1) * sx[dim]
	}
	sx[dim] = -sx[dim]

	return &Array[T]{
		data:    a.data,
		shape:   slices.Clone(a.shape),
		strides: sx,
		offset:  offset,
		order:   a.order,
		mode:    a.mode,
	}, nil
}
