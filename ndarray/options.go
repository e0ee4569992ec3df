// SPDX-License-Identifier: MIT

package ndarray

import (
	"github.com/katalvlaran/ndflat/index"
	"github.com/katalvlaran/ndflat/strides"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the layout of freshly built arrays.
	DefaultOrder = strides.RowMajor

	// DefaultMode resolves out-of-range indices in At/Set/Get/Put.
	DefaultMode = index.Throw

	// DefaultValidate makes FromNested check its input against the shape.
	DefaultValidate = true
)

// ---------- Internal panic messages ----------

const (
	panicOrderInvalid = "ndarray: WithOrder: unknown order"
	panicModeInvalid  = "ndarray: WithMode: unknown index mode"
	panicBufferIndex  = "ndarray: buffer index for in-range subscripts: %v"
)

// Option configures Array construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration; entry points accept ...Option
// and resolve them through gatherOptions.
type Options struct {
	order    strides.Order // DefaultOrder
	mode     index.Mode    // DefaultMode
	validate bool          // DefaultValidate
}

// WithOrder sets the memory layout of the new array.
// Panics when o is not a declared Order.
func WithOrder(o strides.Order) Option {
	if !o.Valid() {
		panic(panicOrderInvalid)
	}

	return func(opts *Options) { opts.order = o }
}

// WithMode sets how accessors resolve out-of-range indices.
// Panics when m is not a declared Mode.
func WithMode(m index.Mode) Option {
	if !m.Valid() {
		panic(panicModeInvalid)
	}

	return func(opts *Options) { opts.mode = m }
}

// WithNoValidate skips the nested.Validate pass in FromNested. The caller
// then guarantees that the input matches the shape.
func WithNoValidate() Option {
	return func(opts *Options) { opts.validate = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		order:    DefaultOrder,
		mode:     DefaultMode,
		validate: DefaultValidate,
	}
	for _, set := range user {
		set(&o) // last writer wins
	}

	return o
}
