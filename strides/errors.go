// SPDX-License-Identifier: MIT

package strides

import "errors"

var (
	// ErrBadShape is returned when a shape holds a negative dimension.
	ErrBadShape = errors.New("strides: invalid shape")

	// ErrBadOrder is returned when an order name is not recognized.
	ErrBadOrder = errors.New("strides: unknown memory order")
)
