// SPDX-License-Identifier: MIT
//
// File: bnb.go
// Role: Parallel depth-first branch-and-bound over 0/1 variables.
// Determinism:
//   - Threads <= 1: fixed branching and child order, identical results per run.
//   - Threads > 1: the optimal objective is stable; among equal-cost optima
//     the reported one may vary.
// Concurrency:
//   - Workers share the compiled model (read-only) and the incumbent (mutex).

package milp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var _ Solver = (*BranchAndBound)(nil)

// BranchAndBound is the bundled Solver. The zero value is not usable; build
// one with NewBranchAndBound.
type BranchAndBound struct {
	opts Options
}

// NewBranchAndBound returns a solver with opts (normalised).
func NewBranchAndBound(opts Options) *BranchAndBound {
	return &BranchAndBound{opts: opts.normalized()}
}

// Options returns the effective options.
func (s *BranchAndBound) Options() Options { return s.opts }

// Solve minimises m. It returns ErrInfeasible when no assignment exists,
// ErrTimeLimit (with the incumbent, if any, in the Solution) when the budget
// ran out, or ctx.Err() on cancellation.
func (s *BranchAndBound) Solve(ctx context.Context, m *Model) (*Solution, error) {
	if m == nil || m.NumVars() == 0 {
		return nil, ErrEmptyModel
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	e := &bnbEngine{
		c:       compile(m),
		opts:    s.opts,
		useLP:   s.opts.Relaxation == LPRelaxation,
		bestObj: math.Inf(1),
	}
	if s.opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(s.opts.TimeLimit)
	}

	root := make([]int8, e.c.n)
	for j := range root {
		root[j] = free
	}
	if e.useLP {
		e.useLP = e.rootRelaxationHelps(root)
	}

	var err error
	if s.opts.Threads <= 1 {
		e.ctx = ctx
		err = e.search(root, 0)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.Threads)
		e.ctx = gctx
		e.group = g
		g.Go(func() error { return e.search(root, 0) })
		err = g.Wait()
	}

	sol := e.solution(time.Since(start))
	switch {
	case err == nil:
	case errors.Is(err, ErrTimeLimit):
		sol.Status = StatusTimeLimit
		return sol, fmt.Errorf("model %q: %w", m.Name(), err)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		return nil, err
	}
	if !e.found {
		return nil, fmt.Errorf("model %q: %w", m.Name(), ErrInfeasible)
	}

	return sol, nil
}

type bnbEngine struct {
	c     *compiled
	opts  Options
	useLP bool

	useDeadline bool
	deadline    time.Time

	ctx   context.Context
	group *errgroup.Group // nil in sequential mode

	nodes atomic.Int64

	mu      sync.Mutex
	best    []int8
	bestObj float64
	found   bool
}

func (e *bnbEngine) incumbent() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.bestObj
}

// offer records fix as the incumbent if it is strictly better.
func (e *bnbEngine) offer(fix []int8, obj float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.found && obj >= e.bestObj-e.opts.Eps {
		return
	}
	e.best = append(e.best[:0], fix...)
	e.bestObj = obj
	e.found = true
}

func (e *bnbEngine) solution(d time.Duration) *Solution {
	e.mu.Lock()
	defer e.mu.Unlock()
	sol := &Solution{Status: StatusOptimal, Nodes: e.nodes.Load(), Duration: d}
	if e.found {
		sol.Objective = e.bestObj
		sol.Values = make([]float64, len(e.best))
		for j, v := range e.best {
			if v == 1 {
				sol.Values[j] = 1
			}
		}
	}

	return sol
}

func (e *bnbEngine) interrupted() error {
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return e.ctx.Err()
}

// search explores the subtree rooted at fix; fix is owned by the call.
func (e *bnbEngine) search(fix []int8, depth int) error {
	e.nodes.Add(1)
	if err := e.interrupted(); err != nil {
		return err
	}
	if !e.c.propagate(fix, e.opts.Eps) {
		return nil
	}

	nFree := countFree(fix)
	if nFree == 0 {
		if e.c.feasible(fix, e.opts.Eps) {
			e.offer(fix, e.c.fixedCost(fix))
		}
		return nil
	}

	bound := e.c.trivialBound(fix)
	var point []float64
	if e.useLP {
		lb, x, st := e.c.relax(fix)
		if err := e.interrupted(); err != nil {
			return err
		}
		switch st {
		case relaxInfeasible:
			return nil
		case relaxOK:
			bound = math.Max(bound, lb)
			point = x
		}
	}
	if bound >= e.incumbent()-e.opts.Eps {
		return nil
	}

	if point != nil && e.tryRounding(fix, point) {
		return nil
	}

	j := e.branchVar(fix, point)
	for _, val := range e.childOrder(j, point) {
		child := append([]int8(nil), fix...)
		child[j] = val
		if e.group != nil && depth < e.opts.SplitDepth &&
			e.group.TryGo(func() error { return e.search(child, depth+1) }) {
			continue
		}
		if err := e.search(child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// rootRelaxationHelps reports whether the LP bound at the root is worth its
// cost: it proves infeasibility or beats the trivial bound. Balanced cut
// models relax every cut indicator to 0, so their root LP bound is trivial.
func (e *bnbEngine) rootRelaxationHelps(root []int8) bool {
	fix := append([]int8(nil), root...)
	if !e.c.propagate(fix, e.opts.Eps) {
		return false
	}
	lb, _, st := e.c.relax(fix)
	switch st {
	case relaxInfeasible:
		return true
	case relaxOK:
		return lb > e.c.trivialBound(fix)+e.opts.Eps
	default:
		return false
	}
}

// tryRounding accepts an integral LP point. It reports true when the point
// was feasible, which closes the node: its LP bound equals its objective.
func (e *bnbEngine) tryRounding(fix []int8, point []float64) bool {
	cand := append([]int8(nil), fix...)
	for j, v := range fix {
		if v != free {
			continue
		}
		switch {
		case point[j] <= e.opts.IntTol:
			cand[j] = 0
		case point[j] >= 1-e.opts.IntTol:
			cand[j] = 1
		default:
			return false
		}
	}
	if !e.c.feasible(cand, e.opts.Eps) {
		return false
	}
	e.offer(cand, e.c.fixedCost(cand))

	return true
}

// branchVar picks the most fractional free variable of point, falling back
// to the lowest free index.
func (e *bnbEngine) branchVar(fix []int8, point []float64) int {
	first, pick, best := -1, -1, 0.0
	for j, v := range fix {
		if v != free {
			continue
		}
		if first < 0 {
			first = j
		}
		if point == nil {
			break
		}
		if frac := math.Min(point[j], 1-point[j]); frac > e.opts.IntTol && frac > best {
			pick, best = j, frac
		}
	}
	if pick < 0 {
		return first
	}

	return pick
}

// childOrder explores the side the relaxation leans to first, or the cheaper
// side when there is no relaxation. Zero-cost variables try 1 first.
func (e *bnbEngine) childOrder(j int, point []float64) [2]int8 {
	if point != nil {
		if point[j] >= 0.5 {
			return [2]int8{1, 0}
		}
		return [2]int8{0, 1}
	}
	if e.c.cost[j] > 0 {
		return [2]int8{0, 1}
	}

	return [2]int8{1, 0}
}
