// SPDX-License-Identifier: MIT

package strides

import "iter"

// Iter yields every subscript tuple of shape.
//
// RowMajor advances the last subscript fastest (lexicographic order);
// ColumnMajor advances the first subscript fastest (colexicographic order).
// A 0-D shape yields one empty tuple; a shape with a zero dimension yields
// nothing.
//
// The yielded slice is owned by the iterator and reused between steps:
// copy it if it must outlive the loop body.
func Iter(shape []int, order Order) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		ndims := len(shape)
		sub := make([]int, ndims)
		if ndims == 0 {
			yield(sub)
			return
		}
		for _, d := range shape {
			if d <= 0 {
				return
			}
		}

		// first/last/step describe the carry direction: the fastest axis
		// is visited first when propagating an increment.
		first, last, step := ndims-1, -1, -1
		if order == ColumnMajor {
			first, last, step = 0, ndims, 1
		}
	next:
		for {
			if !yield(sub) {
				return
			}
			for d := first; d != last; d += step {
				sub[d]++
				if sub[d] < shape[d] {
					continue next
				}
				sub[d] = 0
			}

			return
		}
	}
}
