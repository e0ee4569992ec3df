// SPDX-License-Identifier: MIT

package nested

import (
	"fmt"

	"github.com/katalvlaran/ndflat/strides"
)

// MaxDims bounds the dimensionality accepted by Validate.
const MaxDims = 64

// Validate checks that x can be read through shape.
//
// Implementation:
//   - Stage 1: reject negative dimensions and more than MaxDims dimensions.
//   - Stage 2: walk the first shape[d] entries of every level: each level
//     above the innermost must be a node with at least shape[d] children,
//     each innermost entry must be a leaf.
//
// Behavior highlights:
//   - Entries beyond the declared shape are never inspected: the shape crops
//     the input, so a longer level is legal.
//   - A 0-D shape accepts anything.
//
// Errors:
//   - ErrBadShape, ErrTooManyDims, ErrShortDimension, ErrDepth (wrapped with
//     the offending path).
//
// Complexity: O(numel(shape)).
func Validate[T any](x Value[T], shape []int) error {
	if err := strides.ValidateShape(shape); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if len(shape) > MaxDims {
		return fmt.Errorf("Validate: %d dims: %w", len(shape), ErrTooManyDims)
	}
	if len(shape) == 0 {
		return nil
	}

	return validateLevel(x, shape, 0, nil)
}

func validateLevel[T any](x Value[T], shape []int, dim int, path []int) error {
	if x.leaf {
		return fmt.Errorf("Validate: at %v: %w", path, ErrDepth)
	}
	if len(x.items) < shape[dim] {
		return fmt.Errorf("Validate: at %v: have %d, want %d: %w", path, len(x.items), shape[dim], ErrShortDimension)
	}

	last := dim+1 == len(shape)
	for i := 0; i < shape[dim]; i++ {
		child := x.items[i]
		if last {
			if !child.leaf {
				return fmt.Errorf("Validate: at %v: %w", append(path, i), ErrDepth)
			}
			continue
		}
		if err := validateLevel(child, shape, dim+1, append(path, i)); err != nil {
			return err
		}
	}

	return nil
}

// InferShape returns the full extents of a rectangular nested array.
// A leaf has the 0-D shape; an empty node has shape [0].
//
// Errors:
//   - ErrRagged when siblings differ in length or mix leaves and nodes.
//   - ErrTooManyDims when nesting exceeds MaxDims.
func InferShape[T any](x Value[T]) ([]int, error) {
	shape := []int{}
	for cur := x; !cur.leaf; {
		if len(shape) == MaxDims {
			return nil, fmt.Errorf("InferShape: %w", ErrTooManyDims)
		}
		shape = append(shape, len(cur.items))
		if len(cur.items) == 0 {
			break
		}
		cur = cur.items[0]
	}
	if err := exactLevel(x, shape, 0); err != nil {
		return nil, fmt.Errorf("InferShape: %w", err)
	}

	return shape, nil
}

// exactLevel checks that every node at depth dim has exactly shape[dim]
// children and that leaves appear only at depth len(shape).
func exactLevel[T any](x Value[T], shape []int, dim int) error {
	if dim == len(shape) {
		if !x.leaf {
			return ErrRagged
		}

		return nil
	}
	if x.leaf || len(x.items) != shape[dim] {
		return ErrRagged
	}
	for _, child := range x.items {
		if err := exactLevel(child, shape, dim+1); err != nil {
			return err
		}
	}

	return nil
}
