// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols): a rook-adjacency lattice of precincts.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Units are added row-major; unit (r,c) gets ID cfg.idFn(r*cols+c) and a
//     population from cfg.popFn.
//   - For each cell, Right then Bottom neighbours are linked with weights
//     drawn from cfg.weightFn.
//
// Complexity: O(rows*cols) units and edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(s *sheet, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := len(s.order)
		id := func(r, c int) string { return cfg.idFn(base + r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := s.addUnit(methodGrid, id(r, c), cfg); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := s.link(methodGrid, id(r, c), id(r, c+1), cfg); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := s.link(methodGrid, id(r, c), id(r+1, c), cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
