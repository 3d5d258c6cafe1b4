// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a nil constructor or an inconsistent build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrDuplicateUnit indicates two constructors produced the same unit ID.
var ErrDuplicateUnit = errors.New("builder: duplicate unit ID")
