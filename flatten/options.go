// SPDX-License-Identifier: MIT

package flatten

import "fmt"

// Strategy selects how colexicographic output is produced.
type Strategy int

const (
	// Reindex walks the input row-major into a temporary buffer and reads
	// that buffer back through the transposed shape and strides.
	Reindex Strategy = iota

	// Direct walks the input in column-major subscript order, descending
	// from the root for every element. No temporary buffer is allocated.
	Direct
)

// String returns the lower-case strategy name used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Reindex:
		return "reindex"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "reindex" / "direct" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "reindex":
		return Reindex, nil
	case "direct":
		return Direct, nil
	default:
		return DefaultStrategy, fmt.Errorf("ParseStrategy(%q): %w", name, ErrBadStrategy)
	}
}

// ---------- Defaults (single source of truth) ----------

// DefaultStrategy is used for colexicographic output unless overridden.
const DefaultStrategy = Reindex

// ---------- Internal panic messages ----------

const (
	panicStrategyInvalid = "flatten: WithStrategy: unknown strategy"
	panicReindexBounds   = "flatten: colexicographic reindex: %v"
)

// Option configures a flatten call.
type Option func(*Options)

// Options holds the resolved configuration. Callers never build it directly;
// every entry point resolves ...Option through gatherOptions.
type Options struct {
	strategy Strategy // DefaultStrategy
}

// WithStrategy selects the colexicographic strategy.
// It has no effect on lexicographic output or on inputs with fewer than two
// dimensions.
//
// Panics with a stable message when s is not a declared Strategy.
func WithStrategy(s Strategy) Option {
	if s != Reindex && s != Direct {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

func gatherOptions(user ...Option) Options {
	o := Options{strategy: DefaultStrategy}
	for _, set := range user {
		set(&o) // last writer wins
	}

	return o
}
