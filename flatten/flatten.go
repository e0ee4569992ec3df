// SPDX-License-Identifier: MIT

package flatten

import "github.com/katalvlaran/ndflat/nested"

// Flatten returns the elements of x selected by shape as a new slice.
//
// Behavior highlights:
//   - len(shape) == 0 yields an empty, non-nil slice.
//   - len(shape) == 1 copies the first shape[0] leaves; the order flag has
//     no effect.
//   - Lexicographic order varies the last subscript fastest, colexicographic
//     order the first.
//   - shape crops: only the first shape[d] entries of each level are read.
//
// x must hold at least shape[d] entries at every level and exactly
// len(shape) levels of nesting; violations panic from nested.Value
// accessors or yield unspecified output.
//
// Complexity: O(numel(shape)) for lexicographic and Reindex output,
// O(numel(shape)·ndims) for Direct.
func Flatten[T any](x nested.Value[T], shape []int, colexicographic bool, opts ...Option) []T {
	o := gatherOptions(opts...)
	out := make([]T, 0, capacity(shape))
	walk(x, shape, colexicographic, o, func(v T, _ []int) {
		out = append(out, v)
	})

	return out
}

// Assign writes the elements Flatten would return into out at
// offset, offset+stride, offset+2·stride, ... and returns out itself.
//
// out is not bounds-checked up front: an undersized buffer panics with
// Go's index-out-of-range error part way through the write. stride may be
// negative.
func Assign[T any](x nested.Value[T], shape []int, colexicographic bool, out []T, stride, offset int, opts ...Option) []T {
	o := gatherOptions(opts...)
	k := offset
	walk(x, shape, colexicographic, o, func(v T, _ []int) {
		out[k] = v
		k += stride
	})

	return out
}
