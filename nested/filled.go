// SPDX-License-Identifier: MIT

package nested

// Filled returns a rectangular nested array of the given shape whose every
// element is value. The 0-D shape yields an empty node.
// Complexity: O(numel(shape)).
func Filled[T any](value T, shape []int) Value[T] {
	return FilledBy(shape, func([]int) T { return value })
}

// FilledBy returns a rectangular nested array of the given shape whose
// elements are fn(subscripts). The subscript slice is reused between calls
// and must not be retained by fn. The 0-D shape yields an empty node.
// Complexity: O(numel(shape)) calls to fn.
func FilledBy[T any](shape []int, fn func(idx []int) T) Value[T] {
	if len(shape) == 0 {
		return Of[T]()
	}
	idx := make([]int, len(shape))

	return fillLevel(shape, 0, idx, fn)
}

func fillLevel[T any](shape []int, dim int, idx []int, fn func([]int) T) Value[T] {
	items := make([]Value[T], shape[dim])
	last := dim+1 == len(shape)
	for i := range items {
		idx[dim] = i
		if last {
			items[i] = Leaf(fn(idx))
			continue
		}
		items[i] = fillLevel(shape, dim+1, idx, fn)
	}

	return Value[T]{items: items}
}
