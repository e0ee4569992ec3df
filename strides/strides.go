// SPDX-License-Identifier: MIT

package strides

import (
	"fmt"

	"github.com/samber/lo"
)

// Order selects the memory layout used to derive strides and to decompose
// linear indices into subscripts.
type Order int

const (
	// RowMajor lays out the last dimension contiguously (lexicographic order).
	RowMajor Order = iota

	// ColumnMajor lays out the first dimension contiguously (colexicographic order).
	ColumnMajor
)

const (
	rowMajorName    = "row-major"
	columnMajorName = "column-major"
)

// String returns the conventional name of the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return rowMajorName
	case ColumnMajor:
		return columnMajorName
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Valid reports whether o is one of the declared orders.
func (o Order) Valid() bool {
	return o == RowMajor || o == ColumnMajor
}

// Flip returns the opposite order. Reversing the dimension order of a view
// turns one layout into the other.
func (o Order) Flip() Order {
	if o == RowMajor {
		return ColumnMajor
	}

	return RowMajor
}

// ParseOrder maps "row-major" / "column-major" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case rowMajorName:
		return RowMajor, nil
	case columnMajorName:
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("ParseOrder(%q): %w", s, ErrBadOrder)
	}
}

// Numel returns the number of elements described by shape.
// The empty shape describes a scalar and yields 1; any zero dimension
// yields 0. Negative dimensions are outside the contract.
// Complexity: O(ndims).
func Numel(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// Shape2Strides computes contiguous strides for shape in the given order.
//
// RowMajor:    strides[last] = 1, strides[i] = strides[i+1] * shape[i+1]
// ColumnMajor: strides[0]    = 1, strides[i] = strides[i-1] * shape[i-1]
//
// The cumulative product is applied as-is, so a zero-sized dimension
// propagates a zero stride to every dimension that multiplies over it.
// The returned slice is freshly allocated; an empty shape yields an empty slice.
// Complexity: O(ndims).
func Shape2Strides(shape []int, order Order) []int {
	ndims := len(shape)
	out := make([]int, ndims)
	if ndims == 0 {
		return out
	}

	s := 1
	if order == ColumnMajor {
		for i := 0; i < ndims; i++ {
			out[i] = s
			s *= shape[i]
		}

		return out
	}
	for i := ndims - 1; i >= 0; i-- {
		out[i] = s
		s *= shape[i]
	}

	return out
}

// Reverse reverses v in place and returns it.
// Reversing both the shape and the strides of a view yields its transpose.
func Reverse(v []int) []int {
	return lo.Reverse(v)
}

// Strides2Offset returns the buffer index of the view's first element when
// the view starts at buffer index 0 of a contiguous block: each negative
// stride moves the start to the far end of its dimension.
// Complexity: O(ndims).
func Strides2Offset(shape, strides []int) int {
	offset := 0
	for i, s := range strides {
		if s < 0 {
			offset -= s * (shape[i] - 1)
		}
	}

	return offset
}

// ValidateShape checks that every dimension is non-negative.
// It is not called by the arithmetic helpers; callers that accept shapes
// from outside the program use it to fail fast.
func ValidateShape(shape []int) error {
	for i, d := range shape {
		if d < 0 {
			return fmt.Errorf("ValidateShape: dim %d = %d: %w", i, d, ErrBadShape)
		}
	}

	return nil
}
