// SPDX-License-Identifier: MIT

package ndarray

import (
	"errors"

	"github.com/katalvlaran/ndflat/strides"
)

var (
	// ErrBadShape is returned for shapes with a negative dimension.
	ErrBadShape = strides.ErrBadShape

	// ErrDataLength indicates a buffer shorter than the shape requires.
	ErrDataLength = errors.New("ndarray: data shorter than shape")

	// ErrBadDim indicates a dimension argument outside [0, NDims()).
	ErrBadDim = errors.New("ndarray: dimension out of range")

	// ErrNotMatrix indicates that a 2-D array with non-zero extents was
	// required but the input wasn't.
	ErrNotMatrix = errors.New("ndarray: not a non-empty 2-D array")
)
