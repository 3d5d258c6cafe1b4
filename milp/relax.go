// SPDX-License-Identifier: MIT
//
// File: relax.go
// Role: LP relaxation of a search node (gonum simplex, standard form).
// Policy:
//   - Infeasible relaxation prunes the node.
//   - Any other simplex failure (degenerate shape, singular basis, panic)
//     reports relaxUnavailable; the caller keeps the trivial bound.

package milp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

type relaxStatus int

const (
	relaxOK relaxStatus = iota
	relaxInfeasible
	relaxUnavailable
)

const simplexTol = 1e-10

// relax solves min Σ c_j x_j over the free variables of fix with 0 ≤ x ≤ 1.
// It returns the bound (including fixed costs) and a full-length point whose
// fixed entries carry their fixed values.
func (c *compiled) relax(fix []int8) (float64, []float64, relaxStatus) {
	col := make([]int, c.n)
	nFree := 0
	for j, v := range fix {
		col[j] = -1
		if v == free {
			col[j] = nFree
			nFree++
		}
	}
	if nFree == 0 {
		return c.fixedCost(fix), fixedPoint(fix), relaxOK
	}

	// Residual rows that still touch a free variable.
	type residual struct {
		r   *row
		rhs float64
	}
	var (
		kept   []residual
		nSlack int
	)
	for i := range c.rows {
		r := &c.rows[i]
		rhs, touches := r.rhs, false
		for k, j := range r.idx {
			if fix[j] == 1 {
				rhs -= r.coef[k]
			} else if fix[j] == free {
				touches = true
			}
		}
		if !touches {
			continue
		}
		kept = append(kept, residual{r: r, rhs: rhs})
		if r.sense != Equal {
			nSlack++
		}
	}

	nRows := len(kept) + nFree
	nCols := 2*nFree + nSlack
	data := make([]float64, nRows*nCols)
	b := make([]float64, nRows)
	s := 0
	for i, kr := range kept {
		base := i * nCols
		for k, j := range kr.r.idx {
			if col[j] >= 0 {
				data[base+col[j]] += kr.r.coef[k]
			}
		}
		switch kr.r.sense {
		case LessEq:
			data[base+nFree+s] = 1
			s++
		case GreaterEq:
			data[base+nFree+s] = -1
			s++
		}
		b[i] = kr.rhs
		if b[i] < 0 {
			for k := base; k < base+nCols; k++ {
				data[k] = -data[k]
			}
			b[i] = -b[i]
		}
	}
	// x_t + u_t = 1
	for t := 0; t < nFree; t++ {
		base := (len(kept) + t) * nCols
		data[base+t] = 1
		data[base+nFree+nSlack+t] = 1
		b[len(kept)+t] = 1
	}

	cost := make([]float64, nCols)
	for j, cj := range col {
		if cj >= 0 {
			cost[cj] = c.cost[j]
		}
	}

	f, x, err := simplex(cost, mat.NewDense(nRows, nCols, data), b)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return 0, nil, relaxInfeasible
	default:
		return 0, nil, relaxUnavailable
	}

	point := fixedPoint(fix)
	for j, cj := range col {
		if cj >= 0 {
			point[j] = x[cj]
		}
	}

	return f + c.fixedCost(fix), point, relaxOK
}

func simplex(cost []float64, a *mat.Dense, b []float64) (f float64, x []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("milp: simplex panicked: %v", r)
		}
	}()

	return lp.Simplex(cost, a, b, simplexTol, nil)
}

func fixedPoint(fix []int8) []float64 {
	p := make([]float64, len(fix))
	for j, v := range fix {
		if v == 1 {
			p[j] = 1
		}
	}

	return p
}
