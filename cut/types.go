package cut

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/districtcut/core"
)

// Sentinel errors.
var (
	ErrNilGraph          = errors.New("cut: graph is nil")
	ErrEmptyGraph        = errors.New("cut: graph has no vertices")
	ErrBadTarget         = errors.New("cut: target population must be positive and finite")
	ErrBadAlpha          = errors.New("cut: alpha must be in [0, 1)")
	ErrMissingPopulation = errors.New("cut: vertex has no population")

	// ErrSolverFailure wraps any engine error (infeasible model, time limit,
	// cancellation). The engine error stays reachable through errors.Is.
	ErrSolverFailure = errors.New("cut: solver failed")

	// ErrInconsistentSolution is returned when solved values are not a valid
	// 0/1 assignment or an edge indicator disagrees with its endpoints.
	ErrInconsistentSolution = errors.New("cut: inconsistent solution")
)

// Problem is the input of one cut.
type Problem struct {
	Graph *core.Graph

	// Target is the population of one district.
	Target float64

	// Alpha is the allowed fractional deviation from Target.
	Alpha float64

	// Populations maps every vertex ID of Graph to its population.
	// Extra entries are ignored.
	Populations map[string]float64
}

// Window returns the inclusive population bounds [Target(1−α), Target(1+α)].
func (p Problem) Window() (lo, hi float64) {
	return p.Target * (1 - p.Alpha), p.Target * (1 + p.Alpha)
}

func (p Problem) validate() error {
	if p.Graph == nil {
		return ErrNilGraph
	}
	if p.Graph.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	if math.IsNaN(p.Target) || math.IsInf(p.Target, 0) || p.Target <= 0 {
		return ErrBadTarget
	}
	if math.IsNaN(p.Alpha) || p.Alpha < 0 || p.Alpha >= 1 {
		return ErrBadAlpha
	}

	return nil
}

// Result is a decoded cut.
type Result struct {
	// Selected lists side-1 vertex IDs, ascending.
	Selected []string

	// Assignment maps every residual vertex to its side.
	Assignment map[string]bool

	// Population is Σ population over Selected.
	Population float64

	// CutWeight is the weight of edges crossing the cut, computed from the
	// node assignment.
	CutWeight float64

	// Indicators maps edge ID to the solved y value.
	Indicators map[string]bool

	// Objective is the engine objective; equals CutWeight up to tolerance.
	Objective float64

	// Nodes is the number of search nodes the engine explored.
	Nodes int64

	// Duration is wall-clock time from formulation to decoded result.
	Duration time.Duration
}
