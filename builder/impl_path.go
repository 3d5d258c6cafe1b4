// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n): a corridor of n precincts, each adjacent to the next.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that chains n units in insertion order.
func Path(n int) Constructor {
	return func(s *sheet, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := len(s.order)
		for i := 0; i < n; i++ {
			if err := s.addUnit(methodPath, cfg.idFn(base+i), cfg); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := s.link(methodPath, cfg.idFn(base+i-1), cfg.idFn(base+i), cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
