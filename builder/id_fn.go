// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the unit with insertion index idx (0-based).
type IDFn func(idx int) string

// DefaultIDFn yields "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// FIPSIDFn yields county-style GEOIDs: a two-digit state code followed by a
// three-digit county code counted in odd steps (001, 003, 005, ...), the way
// FIPS numbers counties. Panics if state is outside [1, 99].
func FIPSIDFn(state int) IDFn {
	if state < 1 || state > 99 {
		panic(fmt.Sprintf("FIPSIDFn: state must be in [1,99], got %d", state))
	}
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("FIPSIDFn: idx must be ≥ 0, got %d", idx))
		}
		return fmt.Sprintf("%02d%03d", state, 2*idx+1)
	}
}

// PrefixIDFn yields prefix+index, e.g. "P0", "P1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithFIPSIDs names units with FIPSIDFn(state).
func WithFIPSIDs(state int) BuilderOption { return WithIDScheme(FIPSIDFn(state)) }

// WithPrefixIDs names units with PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
