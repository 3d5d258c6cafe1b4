// Package metrics defines Prometheus metrics for districting runs.
//
// A Recorder owns its registry, so several runs (or tests) never collide on
// the default one. Batch runs export with WriteTextfile for the node_exporter
// textfile collector.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/districtcut/milp"
)

// Cut outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeInfeasible = "infeasible"
	OutcomeTimeLimit  = "time_limit"
	OutcomeCanceled   = "canceled"
	OutcomeError      = "error"
)

// Recorder implements partition.Observer.
type Recorder struct {
	reg *prometheus.Registry

	SolveSeconds prometheus.Histogram
	CutsTotal    *prometheus.CounterVec
	NodesTotal   prometheus.Counter
	Districts    prometheus.Gauge
	Fragmented   prometheus.Gauge
}

// NewRecorder registers every metric on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		SolveSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "districtcut_cut_solve_seconds",
			Help:    "Wall-clock time of one balanced min-cut, formulation to decoded result",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		CutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "districtcut_cuts_total",
			Help: "Cuts attempted, by outcome",
		}, []string{"outcome"}),
		NodesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "districtcut_bnb_nodes_total",
			Help: "Branch-and-bound nodes explored",
		}),
		Districts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "districtcut_districts",
			Help: "Districts in the last completed plan",
		}),
		Fragmented: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "districtcut_fragmented_districts",
			Help: "Districts of the last plan with more than one connected component",
		}),
	}
	r.reg.MustRegister(r.SolveSeconds, r.CutsTotal, r.NodesTotal, r.Districts, r.Fragmented)

	return r
}

// Registry exposes the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveCut records one cut attempt.
func (r *Recorder) ObserveCut(d time.Duration, nodes int64, err error) {
	r.CutsTotal.WithLabelValues(Outcome(err)).Inc()
	if err != nil {
		return
	}
	r.SolveSeconds.Observe(d.Seconds())
	r.NodesTotal.Add(float64(nodes))
}

// ObservePlan records a finished plan.
func (r *Recorder) ObservePlan(districts, fragmented int) {
	r.Districts.Set(float64(districts))
	r.Fragmented.Set(float64(fragmented))
}

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Outcome classifies a cut error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, milp.ErrInfeasible):
		return OutcomeInfeasible
	case errors.Is(err, milp.ErrTimeLimit), errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeLimit
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}
