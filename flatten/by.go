// SPDX-License-Identifier: MIT

package flatten

import "github.com/katalvlaran/ndflat/nested"

// Callback maps one element to an output value. indices holds the
// element's subscripts in the nested input; the slice is reused between
// calls and must not be retained.
type Callback[T, U any] func(value T, indices []int) U

// By is Flatten with every element passed through fn.
// fn is called exactly once per element, in output order.
func By[T, U any](x nested.Value[T], shape []int, colexicographic bool, fn Callback[T, U], opts ...Option) []U {
	o := gatherOptions(opts...)
	out := make([]U, 0, capacity(shape))
	walk(x, shape, colexicographic, o, func(v T, idx []int) {
		out = append(out, fn(v, idx))
	})

	return out
}

// AssignBy is Assign with every element passed through fn.
func AssignBy[T, U any](x nested.Value[T], shape []int, colexicographic bool, out []U, stride, offset int, fn Callback[T, U], opts ...Option) []U {
	o := gatherOptions(opts...)
	k := offset
	walk(x, shape, colexicographic, o, func(v T, idx []int) {
		out[k] = fn(v, idx)
		k += stride
	})

	return out
}
