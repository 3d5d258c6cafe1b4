package milp

import (
	"fmt"
	"strings"
	"time"
)

// Relaxation selects the lower-bounding strategy of BranchAndBound.
type Relaxation int

const (
	// NoRelaxation bounds with Σ fixed costs + Σ min(0, c) over free variables.
	NoRelaxation Relaxation = iota
	// LPRelaxation additionally solves the LP relaxation of each node, as long
	// as the root relaxation is tighter than the trivial bound. Each node then
	// pays a dense simplex, so it only suits models with a strong relaxation.
	LPRelaxation
)

func (r Relaxation) String() string {
	switch r {
	case NoRelaxation:
		return "none"
	case LPRelaxation:
		return "lp"
	default:
		return fmt.Sprintf("Relaxation(%d)", int(r))
	}
}

// ParseRelaxation maps "lp" and "none" (case-insensitive) to a Relaxation.
func ParseRelaxation(s string) (Relaxation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lp":
		return LPRelaxation, nil
	case "none", "":
		return NoRelaxation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadRelaxation, s)
	}
}

// Options configures BranchAndBound.
type Options struct {
	// Threads bounds the number of goroutines exploring the tree.
	// Threads <= 1 gives a sequential, fully deterministic search.
	Threads int

	// TimeLimit is the wall-clock budget; zero disables it.
	TimeLimit time.Duration

	Relaxation Relaxation

	// Eps is the feasibility and pruning tolerance.
	Eps float64

	// IntTol decides when an LP value counts as integral.
	IntTol float64

	// SplitDepth is the deepest tree level whose children may be handed to
	// another goroutine. Deeper nodes are always explored inline.
	SplitDepth int
}

// DefaultOptions returns the engine defaults: 4 threads, propagation bounds
// only, no time limit.
func DefaultOptions() Options {
	return Options{
		Threads:    4,
		Relaxation: NoRelaxation,
		Eps:        1e-9,
		IntTol:     1e-6,
		SplitDepth: 12,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Threads < 1 {
		o.Threads = 1
	}
	if o.Eps <= 0 {
		o.Eps = d.Eps
	}
	if o.IntTol <= 0 {
		o.IntTol = d.IntTol
	}
	if o.SplitDepth <= 0 {
		o.SplitDepth = d.SplitDepth
	}
	if o.TimeLimit < 0 {
		o.TimeLimit = 0
	}

	return o
}
