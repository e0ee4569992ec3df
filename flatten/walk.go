// SPDX-License-Identifier: MIT

package flatten

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ndflat/index"
	"github.com/katalvlaran/ndflat/nested"
	"github.com/katalvlaran/ndflat/strides"
)

// emitFunc receives elements in output order together with their subscripts
// in the input. The subscript slice is reused between calls.
type emitFunc[T any] func(v T, idx []int)

// walk drives every entry point: it visits the elements of x selected by
// shape in the requested order and hands each one to emit.
func walk[T any](x nested.Value[T], shape []int, colexicographic bool, o Options, emit emitFunc[T]) {
	ndims := len(shape)
	if ndims == 0 {
		return
	}
	idx := make([]int, ndims)
	if ndims == 1 {
		// Both orders coincide: copy the first shape[0] leaves.
		for i := 0; i < shape[0]; i++ {
			idx[0] = i
			emit(x.At(i).Scalar(), idx)
		}

		return
	}
	if !colexicographic {
		walkLexicographic(x, shape, 0, idx, emit)
		return
	}
	if o.strategy == Direct {
		walkColexicographic(x, shape, emit)
		return
	}
	reindexColexicographic(x, shape, idx, emit)
}

// walkLexicographic descends one nesting level per dimension, visiting the
// first shape[dim] entries of every level.
func walkLexicographic[T any](x nested.Value[T], shape []int, dim int, idx []int, emit emitFunc[T]) {
	last := dim+1 == len(shape)
	for i := 0; i < shape[dim]; i++ {
		idx[dim] = i
		if last {
			emit(x.At(i).Scalar(), idx)
			continue
		}
		walkLexicographic(x.At(i), shape, dim+1, idx, emit)
	}
}

// reindexColexicographic flattens x row-major into a temporary buffer and
// reads it back through the transposed layout: reversing both the shape and
// the row-major strides makes the first input dimension the fastest one.
// The second pass jumps across tmp, so it gives up locality in exchange for
// reusing the row-major walk.
func reindexColexicographic[T any](x nested.Value[T], shape []int, idx []int, emit emitFunc[T]) {
	n := strides.Numel(shape)
	tmp := make([]T, 0, n)
	walkLexicographic(x, shape, 0, idx, func(v T, _ []int) {
		tmp = append(tmp, v)
	})

	sh := strides.Reverse(slices.Clone(shape))
	sx := strides.Reverse(strides.Shape2Strides(shape, strides.RowMajor))
	for i := 0; i < n; i++ {
		j, err := index.Vind2Bind(sh, sx, 0, strides.RowMajor, i, index.Throw)
		if err != nil {
			panic(fmt.Sprintf(panicReindexBounds, err))
		}
		// Subscripts of the i-th colexicographic element.
		if err = index.Ind2SubInto(shape, nil, 0, strides.ColumnMajor, i, index.Throw, idx); err != nil {
			panic(fmt.Sprintf(panicReindexBounds, err))
		}
		emit(tmp[j], idx)
	}
}

// walkColexicographic visits subscripts with the first index fastest and
// resolves each one from the root.
func walkColexicographic[T any](x nested.Value[T], shape []int, emit emitFunc[T]) {
	for sub := range strides.Iter(shape, strides.ColumnMajor) {
		v := x
		for _, k := range sub {
			v = v.At(k)
		}
		emit(v.Scalar(), sub)
	}
}

// capacity is the number of elements emitted for shape.
func capacity(shape []int) int {
	if len(shape) == 0 {
		return 0
	}

	return strides.Numel(shape)
}
