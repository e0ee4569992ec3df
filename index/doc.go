// SPDX-License-Identifier: MIT

// Package index converts between the three ways of addressing an element of
// a strided n-dimensional view:
//
//   - a view index:   linear position in the logical view, in a given Order;
//   - subscripts:     one coordinate per dimension;
//   - a buffer index: position in the underlying flat data buffer.
//
// Conversions:
//
//	Vind2Bind  view index   → buffer index
//	Bind2Vind  buffer index → view index
//	Ind2Sub    linear index → subscripts
//	Sub2Ind    subscripts   → buffer index
//
// Out-of-range indices are handled by a Mode: Throw (return ErrOutOfBounds),
// Normalize (negative indices count from the end), Wrap (modulo) or Clamp.
// Every function is pure; errors wrap ErrOutOfBounds or ErrDimensionMismatch
// and are matched with errors.Is.
package index
