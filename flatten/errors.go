// SPDX-License-Identifier: MIT

package flatten

import "errors"

// ErrBadStrategy is returned by ParseStrategy for an unknown name.
var ErrBadStrategy = errors.New("flatten: unknown strategy")
