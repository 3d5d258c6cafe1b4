package partition

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/districtcut/cut"
)

// District is one extracted region. Write-once.
type District struct {
	// Number is 1-based, in extraction order.
	Number int

	// Units lists unit IDs, ascending.
	Units []string

	Population float64

	// CutWeight is the weight of edges that crossed the cut separating this
	// district from the rest of the residual graph. Zero for the last one.
	CutWeight float64

	// Components is the number of connected pieces of the district in the
	// original adjacency graph.
	Components int
}

// Plan is the outcome of a run.
type Plan struct {
	RunID     string
	Target    float64
	Alpha     float64
	Districts []District

	// Runtimes holds one solve duration per cut; the last district has none.
	Runtimes []time.Duration
}

// TotalRuntime is Σ Runtimes.
func (p *Plan) TotalRuntime() time.Duration {
	var sum time.Duration
	for _, d := range p.Runtimes {
		sum += d
	}

	return sum
}

// Assignment maps unit ID to district number.
func (p *Plan) Assignment() map[string]int {
	out := make(map[string]int)
	for _, d := range p.Districts {
		for _, id := range d.Units {
			out[id] = d.Number
		}
	}

	return out
}

// Cutter extracts one district from a residual graph. *cut.Solver implements it.
type Cutter interface {
	Cut(ctx context.Context, p cut.Problem) (*cut.Result, error)
}

// Observer receives per-cut measurements. *metrics.Recorder implements it.
type Observer interface {
	ObserveCut(d time.Duration, nodes int64, err error)
	ObservePlan(districts int, fragmented int)
}

type nopObserver struct{}

func (nopObserver) ObserveCut(time.Duration, int64, error) {}
func (nopObserver) ObservePlan(int, int)                   {}

// Default parameters.
const (
	DefaultDistricts = 4
	DefaultAlpha     = 0.05
)

// Option configures an Engine.
type Option func(*Engine)

// WithDistricts sets the number of districts.
func WithDistricts(n int) Option { return func(e *Engine) { e.districts = n } }

// WithAlpha sets the population tolerance.
func WithAlpha(alpha float64) Option { return func(e *Engine) { e.alpha = alpha } }

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver sets the measurement sink; nil keeps the no-op observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.obs = o
		}
	}
}

// WithRunID fixes the run identifier instead of a random UUID.
func WithRunID(id string) Option { return func(e *Engine) { e.runID = id } }
