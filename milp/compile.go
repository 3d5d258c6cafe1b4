// SPDX-License-Identifier: MIT
//
// File: compile.go
// Role: Dense, solver-side view of a Model plus node-level propagation and bounds.
// Determinism:
//   - Row and column orders follow the Model.
// Concurrency:
//   - compiled is read-only after construction and shared by all workers.

package milp

import "math"

const free int8 = -1

// row is a merged constraint: duplicate variables are summed, zeros dropped.
type row struct {
	name  string
	idx   []int
	coef  []float64
	sense Sense
	rhs   float64
}

type compiled struct {
	n    int
	rows []row
	cost []float64
}

func compile(m *Model) *compiled {
	c := &compiled{n: len(m.vars), cost: make([]float64, len(m.vars))}
	for _, t := range m.obj {
		c.cost[t.Var] += t.Coef
	}
	c.rows = make([]row, 0, len(m.rows))
	for _, r := range m.rows {
		acc := make(map[int]float64, len(r.Terms))
		order := make([]int, 0, len(r.Terms))
		for _, t := range r.Terms {
			j := int(t.Var)
			if _, seen := acc[j]; !seen {
				order = append(order, j)
			}
			acc[j] += t.Coef
		}
		cr := row{name: r.Name, sense: r.Sense, rhs: r.RHS}
		for _, j := range order {
			if acc[j] == 0 {
				continue
			}
			cr.idx = append(cr.idx, j)
			cr.coef = append(cr.coef, acc[j])
		}
		c.rows = append(c.rows, cr)
	}

	return c
}

// activity returns the smallest and largest row activity reachable from fix.
func (r *row) activity(fix []int8) (lo, hi float64) {
	for k, j := range r.idx {
		a := r.coef[k]
		switch fix[j] {
		case free:
			if a > 0 {
				hi += a
			} else {
				lo += a
			}
		case 1:
			lo += a
			hi += a
		}
	}

	return lo, hi
}

// propagate fixes variables forced by row activity intervals until nothing
// changes. It returns false when some row cannot be satisfied.
func (c *compiled) propagate(fix []int8, eps float64) bool {
	for changed := true; changed; {
		changed = false
		for i := range c.rows {
			r := &c.rows[i]
			lo, hi := r.activity(fix)
			upper := r.sense == LessEq || r.sense == Equal
			lower := r.sense == GreaterEq || r.sense == Equal
			if upper && lo > r.rhs+eps {
				return false
			}
			if lower && hi < r.rhs-eps {
				return false
			}
			for k, j := range r.idx {
				if fix[j] != free {
					continue
				}
				a := r.coef[k]
				if upper {
					if a > 0 && lo+a > r.rhs+eps {
						fix[j] = 0
						changed = true
						continue
					}
					if a < 0 && lo-a > r.rhs+eps {
						fix[j] = 1
						changed = true
						continue
					}
				}
				if lower {
					if a > 0 && hi-a < r.rhs-eps {
						fix[j] = 1
						changed = true
						continue
					}
					if a < 0 && hi+a < r.rhs-eps {
						fix[j] = 0
						changed = true
					}
				}
			}
		}
	}

	return true
}

// trivialBound is Σ fixed costs + Σ min(0, c) over free variables.
func (c *compiled) trivialBound(fix []int8) float64 {
	var b float64
	for j, v := range fix {
		switch v {
		case 1:
			b += c.cost[j]
		case free:
			b += math.Min(0, c.cost[j])
		}
	}

	return b
}

// fixedCost is Σ c over variables fixed to 1.
func (c *compiled) fixedCost(fix []int8) float64 {
	var b float64
	for j, v := range fix {
		if v == 1 {
			b += c.cost[j]
		}
	}

	return b
}

// feasible checks a complete assignment against every row.
func (c *compiled) feasible(fix []int8, eps float64) bool {
	for i := range c.rows {
		r := &c.rows[i]
		var act float64
		for k, j := range r.idx {
			if fix[j] == 1 {
				act += r.coef[k]
			}
		}
		if !satisfied(act, r.sense, r.rhs, eps) {
			return false
		}
	}

	return true
}

func countFree(fix []int8) int {
	n := 0
	for _, v := range fix {
		if v == free {
			n++
		}
	}

	return n
}
