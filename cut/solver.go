package cut

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/districtcut/milp"
)

// DefaultTolerance is the integrality tolerance used when decoding.
const DefaultTolerance = 1e-6

// Factory builds a fresh engine for one solve.
type Factory func() milp.Solver

// DefaultFactory builds milp.BranchAndBound with milp.DefaultOptions.
func DefaultFactory() milp.Solver {
	return milp.NewBranchAndBound(milp.DefaultOptions())
}

// Solver formulates, solves and decodes cuts. It holds no per-solve state.
type Solver struct {
	factory Factory
	tol     float64
}

// Option configures a Solver.
type Option func(*Solver)

// WithTolerance overrides DefaultTolerance; non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(s *Solver) {
		if tol > 0 {
			s.tol = tol
		}
	}
}

// NewSolver returns a Solver drawing engines from factory (DefaultFactory if nil).
func NewSolver(factory Factory, opts ...Option) *Solver {
	if factory == nil {
		factory = DefaultFactory
	}
	s := &Solver{factory: factory, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Cut solves one balanced min-cut on p.Graph.
// Engine errors come back wrapped in ErrSolverFailure.
func (s *Solver) Cut(ctx context.Context, p Problem) (*Result, error) {
	start := time.Now()

	f, err := Formulate(p)
	if err != nil {
		return nil, err
	}

	sol, err := s.factory().Solve(ctx, f.Model)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolverFailure, err)
	}

	res, err := f.Decode(sol, s.tol)
	if err != nil {
		return nil, err
	}
	res.Duration = time.Since(start)

	return res, nil
}
