// SPDX-License-Identifier: MIT

// Package flatten turns an n-dimensional nested array into a flat slice,
// reading it in lexicographic (last index fastest, row-major) or
// colexicographic (first index fastest, column-major) order.
//
// The shape argument governs how many entries of each nesting level are
// consumed: shape[d] smaller than the physical length of a level crops it.
// Inputs must be at least as large as shape at every level and nested
// exactly len(shape) deep; anything else is a precondition violation.
// nested.Validate checks this up front when the input is untrusted.
//
// Four call shapes are offered:
//
//	Flatten(x, shape, colex)                       // fresh slice
//	Assign(x, shape, colex, out, stride, offset)   // caller buffer
//	By(x, shape, colex, fn)                        // mapped, fresh slice
//	AssignBy(x, shape, colex, out, stride, offset, fn)
//
// plus Flatten2D..Flatten5D for native Go slices of fixed depth.
//
// Colexicographic output is produced by the Reindex strategy by default:
// one row-major walk into a temporary buffer, re-read through the
// transposed (reversed) shape and strides. WithStrategy(Direct) walks the
// input in column-major subscript order instead; both yield the same order.
//
// All functions are synchronous and keep no state between calls.
package flatten
