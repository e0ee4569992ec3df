// SPDX-License-Identifier: MIT

package nested

import (
	"errors"

	"github.com/katalvlaran/ndflat/strides"
)

var (
	// ErrDepth indicates that the nesting depth does not match the shape:
	// a leaf where a node was expected, or a node where a leaf was expected.
	ErrDepth = errors.New("nested: nesting depth does not match shape")

	// ErrShortDimension indicates a level holding fewer entries than the
	// shape declares for it.
	ErrShortDimension = errors.New("nested: dimension shorter than shape")

	// ErrRagged indicates siblings of unequal length or kind.
	ErrRagged = errors.New("nested: ragged array")

	// ErrTooManyDims indicates a shape with more than MaxDims dimensions.
	ErrTooManyDims = errors.New("nested: too many dimensions")
)

// ErrBadShape is the strides sentinel re-exported so callers of Validate
// need not import strides to match it.
var ErrBadShape = strides.ErrBadShape
