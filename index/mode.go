// SPDX-License-Identifier: MIT

package index

import "fmt"

// Mode decides what happens to an index that falls outside its valid range.
type Mode int

const (
	// Throw rejects out-of-range indices with ErrOutOfBounds.
	Throw Mode = iota

	// Normalize resolves negative indices from the end (-1 ⇒ last) and then
	// rejects anything still out of range.
	Normalize

	// Wrap reduces the index modulo the extent, for negative indices too.
	Wrap

	// Clamp pins the index to the nearest end of the range.
	Clamp
)

var modeNames = [...]string{
	Throw:     "throw",
	Normalize: "normalize",
	Wrap:      "wrap",
	Clamp:     "clamp",
}

// String returns the mode name used by ParseMode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= Throw && m <= Clamp
}

// ParseMode maps a mode name ("throw", "normalize", "wrap", "clamp") to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}

	return Throw, fmt.Errorf("ParseMode(%q): %w", s, ErrBadMode)
}

// resolve applies m to idx for the range [0, hi]. An empty range (hi < 0)
// has no valid index under any mode.
func (m Mode) resolve(idx, hi int) (int, error) {
	if hi < 0 {
		return 0, ErrOutOfBounds
	}
	n := hi + 1
	switch m {
	case Clamp:
		if idx < 0 {
			return 0, nil
		}
		if idx > hi {
			return hi, nil
		}

		return idx, nil
	case Wrap:
		return ((idx % n) + n) % n, nil
	case Normalize:
		if idx < 0 {
			idx += n
		}
	}
	if idx < 0 || idx > hi {
		return 0, ErrOutOfBounds
	}

	return idx, nil
}
