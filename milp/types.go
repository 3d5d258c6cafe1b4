package milp

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors.
var (
	// ErrInfeasible is returned when no 0/1 assignment satisfies every constraint.
	ErrInfeasible = errors.New("milp: model is infeasible")

	// ErrTimeLimit is returned when the time budget ran out before optimality was proven.
	ErrTimeLimit = errors.New("milp: time limit reached")

	// ErrEmptyModel is returned when a model without variables is solved.
	ErrEmptyModel = errors.New("milp: model has no variables")

	// ErrUnknownVariable is returned when a term references a variable the model does not own.
	ErrUnknownVariable = errors.New("milp: unknown variable")

	// ErrBadCoefficient is returned for NaN or infinite coefficients and right-hand sides.
	ErrBadCoefficient = errors.New("milp: coefficient is NaN or infinite")

	// ErrBadSense is returned for an unknown constraint sense.
	ErrBadSense = errors.New("milp: unknown constraint sense")

	// ErrBadRelaxation is returned when a relaxation name cannot be parsed.
	ErrBadRelaxation = errors.New("milp: unknown relaxation")
)

// Var is a handle to a binary variable of a Model.
type Var int

// Sense is the relation of a linear constraint.
type Sense int

const (
	// LessEq is Σ a·x ≤ rhs.
	LessEq Sense = iota
	// GreaterEq is Σ a·x ≥ rhs.
	GreaterEq
	// Equal is Σ a·x = rhs.
	Equal
)

func (s Sense) String() string {
	switch s {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Term is coefficient·variable.
type Term struct {
	Var  Var
	Coef float64
}

// Constraint is a named linear row.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Status reports how a solve ended.
type Status int

const (
	// StatusOptimal means the returned assignment is proven optimal.
	StatusOptimal Status = iota
	// StatusTimeLimit means the budget ran out; Values hold the best incumbent, if any.
	StatusTimeLimit
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeLimit:
		return "time_limit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution is the outcome of a solve.
type Solution struct {
	Status    Status
	Objective float64

	// Values holds one 0/1 value per model variable, indexed by Var.
	Values []float64

	// Nodes is the number of search nodes explored.
	Nodes int64

	Duration time.Duration
}

// Value returns the solved value of v (0 for an out-of-range handle).
func (s *Solution) Value(v Var) float64 {
	if int(v) < 0 || int(v) >= len(s.Values) {
		return 0
	}
	return s.Values[v]
}

// Solver solves a Model. Implementations must not keep state between calls
// that could leak from one model into the next.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}
