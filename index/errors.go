// SPDX-License-Identifier: MIT

package index

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates an index outside the addressable range under
	// the requested Mode.
	ErrOutOfBounds = errors.New("index: index out of bounds")

	// ErrDimensionMismatch indicates that the number of subscripts does not
	// match the number of dimensions.
	ErrDimensionMismatch = errors.New("index: dimension mismatch")

	// ErrBadMode is returned when a mode name is not recognized.
	ErrBadMode = errors.New("index: unknown index mode")
)

// indexErrorf wraps err with the calling function and the offending index.
func indexErrorf(fn string, idx int, err error) error {
	return fmt.Errorf("%s(%d): %w", fn, idx, err)
}
