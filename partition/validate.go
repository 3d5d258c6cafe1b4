package partition

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors.
var (
	ErrNilModel         = errors.New("partition: model is nil")
	ErrBadDistrictCount = errors.New("partition: district count must be between 1 and the number of units")
	ErrPopulationWindow = errors.New("partition: district population outside the allowed window")
	ErrGraphMutation    = errors.New("partition: residual graph did not shrink by the district size")
	ErrCoverageMismatch = errors.New("partition: districts do not cover the units exactly")
)

// WindowError reports a population outside [Lower, Upper].
type WindowError struct {
	District   int
	Population float64
	Lower      float64
	Upper      float64
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("partition: district %d population %g outside [%g, %g]",
		e.District, e.Population, e.Lower, e.Upper)
}

func (e *WindowError) Unwrap() error { return ErrPopulationWindow }

// CheckPopulationWindow verifies target(1−α) ≤ pop ≤ target(1+α), inclusive,
// with a relative slack of 1e-9 for solver round-off.
func CheckPopulationWindow(pop, target, alpha float64) error {
	lo, hi := target*(1-alpha), target*(1+alpha)
	slack := 1e-9 * math.Max(1, math.Abs(target))
	if math.IsNaN(pop) || pop < lo-slack || pop > hi+slack {
		return &WindowError{Population: pop, Lower: lo, Upper: hi}
	}

	return nil
}

// CheckRemoval verifies after == before − removed.
func CheckRemoval(before, after, removed int) error {
	if after != before-removed {
		return fmt.Errorf("%w: %d − %d ≠ %d", ErrGraphMutation, before, removed, after)
	}

	return nil
}

// CheckCoverage verifies that districts partition units: same count, no
// duplicates, no omissions, no strangers.
func CheckCoverage(districts []District, units []string) error {
	var n int
	seen := make(map[string]int, len(units))
	for _, d := range districts {
		n += len(d.Units)
		for _, id := range d.Units {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%w: %q in districts %d and %d", ErrCoverageMismatch, id, prev, d.Number)
			}
			seen[id] = d.Number
		}
	}
	if n != len(units) {
		return fmt.Errorf("%w: %d assigned, %d units", ErrCoverageMismatch, n, len(units))
	}

	var missing []string
	for _, id := range units {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: unassigned %v", ErrCoverageMismatch, missing)
	}

	return nil
}
