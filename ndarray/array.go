// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ndflat/flatten"
	"github.com/katalvlaran/ndflat/index"
	"github.com/katalvlaran/ndflat/nested"
	"github.com/katalvlaran/ndflat/strides"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromNested = "FromNested"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxGet        = "Get"
	ctxPut        = "Put"
	ctxFlip       = "Flip"
)

// arrayErrorf wraps err with the method tag and its arguments.
func arrayErrorf(method string, args any, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, args, err)
}

// Array is a strided view over a flat buffer.
//   - The element with subscripts s lives at data[offset + Σ s[d]*strides[d]].
//   - order is the layout the strides were derived for; Get/Put decompose
//     linear indices in that order.
//   - mode resolves out-of-range indices in every accessor.
type Array[T any] struct {
	data    []T
	shape   []int
	strides []int
	offset  int
	order   strides.Order
	mode    index.Mode
}

// New wraps data as a contiguous array of the given shape. data is
// retained, not copied; it may be longer than the shape requires.
//
// Errors:
//   - ErrBadShape for a negative dimension.
//   - ErrDataLength when len(data) < numel(shape).
//
// Complexity: O(ndims).
func New[T any](data []T, shape []int, opts ...Option) (*Array[T], error) {
	o := gatherOptions(opts...)
	if err := strides.ValidateShape(shape); err != nil {
		return nil, arrayErrorf(ctxNew, shape, err)
	}
	if n := strides.Numel(shape); len(data) < n {
		return nil, arrayErrorf(ctxNew, shape, fmt.Errorf("have %d, want %d: %w", len(data), n, ErrDataLength))
	}

	return &Array[T]{
		data:    data,
		shape:   slices.Clone(shape),
		strides: strides.Shape2Strides(shape, o.order),
		order:   o.order,
		mode:    o.mode,
	}, nil
}

// FromNested flattens x into a fresh buffer laid out in the configured
// order and wraps it. The shape crops x as in flatten.Flatten; a 0-D shape
// requires x to be a leaf.
//
// Errors:
//   - nested.Validate errors unless WithNoValidate is given.
//   - nested.ErrDepth when a 0-D shape is paired with a node.
func FromNested[T any](x nested.Value[T], shape []int, opts ...Option) (*Array[T], error) {
	o := gatherOptions(opts...)
	if o.validate {
		if err := nested.Validate(x, shape); err != nil {
			return nil, arrayErrorf(ctxFromNested, shape, err)
		}
	}

	var data []T
	if len(shape) == 0 {
		if !x.IsLeaf() {
			return nil, arrayErrorf(ctxFromNested, shape, nested.ErrDepth)
		}
		data = []T{x.Scalar()}
	} else {
		data = flatten.Flatten(x, shape, o.order == strides.ColumnMajor)
	}

	return New(data, shape, opts...)
}

// Shape returns a copy of the extents.
func (a *Array[T]) Shape() []int { return slices.Clone(a.shape) }

// Strides returns a copy of the strides.
func (a *Array[T]) Strides() []int { return slices.Clone(a.strides) }

// Offset returns the buffer index of the element with all-zero subscripts.
func (a *Array[T]) Offset() int { return a.offset }

// Order returns the layout used to decompose linear indices.
func (a *Array[T]) Order() strides.Order { return a.order }

// NDims returns the number of dimensions.
func (a *Array[T]) NDims() int { return len(a.shape) }

// Len returns the number of elements in the view.
func (a *Array[T]) Len() int { return strides.Numel(a.shape) }

// At returns the element at subs.
// Offset is zero only when no negative stride spans more than one element,
// so Sub2Ind's view rule for zero offsets never changes the result here.
func (a *Array[T]) At(subs ...int) (T, error) {
	j, err := index.Sub2Ind(a.shape, a.strides, a.offset, subs, a.mode)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, subs, err)
	}

	return a.data[j], nil
}

// Set stores v at subs.
func (a *Array[T]) Set(v T, subs ...int) error {
	j, err := index.Sub2Ind(a.shape, a.strides, a.offset, subs, a.mode)
	if err != nil {
		return arrayErrorf(ctxSet, subs, err)
	}
	a.data[j] = v

	return nil
}

// Get returns the i-th element of the view in the array's order.
func (a *Array[T]) Get(i int) (T, error) {
	j, err := index.Vind2Bind(a.shape, a.strides, a.offset, a.order, i, a.mode)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxGet, i, err)
	}

	return a.data[j], nil
}

// Put stores v as the i-th element of the view in the array's order.
func (a *Array[T]) Put(i int, v T) error {
	j, err := index.Vind2Bind(a.shape, a.strides, a.offset, a.order, i, a.mode)
	if err != nil {
		return arrayErrorf(ctxPut, i, err)
	}
	a.data[j] = v

	return nil
}

// Do calls fn for every element, visiting subscripts in order, until fn
// returns false. The subscript slice is reused between calls.
func (a *Array[T]) Do(order strides.Order, fn func(subs []int, v T) bool) {
	for sub := range strides.Iter(a.shape, order) {
		if !fn(sub, a.data[a.bufferIndex(sub)]) {
			return
		}
	}
}

// ToSlice materializes the view into a new slice read in order.
func (a *Array[T]) ToSlice(order strides.Order) []T {
	out := make([]T, 0, a.Len())
	a.Do(order, func(_ []int, v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

// ToNested rebuilds a nested value from the view. A 0-D array yields a leaf.
func (a *Array[T]) ToNested() nested.Value[T] {
	if len(a.shape) == 0 {
		return nested.Leaf(a.data[a.offset])
	}

	return nested.FilledBy(a.shape, func(sub []int) T {
		return a.data[a.bufferIndex(sub)]
	})
}

// Clone returns a compact copy in the array's order with its own buffer.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		data:    a.ToSlice(a.order),
		shape:   slices.Clone(a.shape),
		strides: strides.Shape2Strides(a.shape, a.order),
		order:   a.order,
		mode:    a.mode,
	}
}

// String formats the view as a nested slice literal, e.g. [[1 2] [3 4]].
func (a *Array[T]) String() string {
	return a.ToNested().String()
}

// bufferIndex maps in-range subscripts to a buffer index.
func (a *Array[T]) bufferIndex(sub []int) int {
	j, err := index.Sub2Ind(a.shape, a.strides, a.offset, sub)
	if err != nil {
		panic(fmt.Sprintf(panicBufferIndex, err))
	}

	return j
}
