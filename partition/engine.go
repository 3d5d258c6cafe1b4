package partition

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/districtcut/bfs"
	"github.com/katalvlaran/districtcut/core"
	"github.com/katalvlaran/districtcut/cut"
	"github.com/katalvlaran/districtcut/geo"
)

// Engine runs the districting loop. It is safe to reuse across runs; each
// Run owns its residual graph exclusively.
type Engine struct {
	cutter    Cutter
	districts int
	alpha     float64
	runID     string
	log       *zap.Logger
	obs       Observer
}

// NewEngine returns an engine using cutter (a default cut.Solver if nil).
func NewEngine(cutter Cutter, opts ...Option) *Engine {
	if cutter == nil {
		cutter = cut.NewSolver(nil)
	}
	e := &Engine{
		cutter:    cutter,
		districts: DefaultDistricts,
		alpha:     DefaultAlpha,
		log:       zap.NewNop(),
		obs:       nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run partitions model into the configured number of districts.
// model is not mutated.
func (e *Engine) Run(ctx context.Context, model *geo.Model) (*Plan, error) {
	if model == nil || model.Graph == nil {
		return nil, ErrNilModel
	}
	n := e.districts
	if n < 1 || n > model.Len() {
		return nil, fmt.Errorf("%w: %d districts for %d units", ErrBadDistrictCount, n, model.Len())
	}
	if math.IsNaN(e.alpha) || e.alpha < 0 || e.alpha >= 1 {
		return nil, cut.ErrBadAlpha
	}
	if ctx == nil {
		ctx = context.Background()
	}

	runID := e.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	log := e.log.With(zap.String("run_id", runID))

	plan := &Plan{
		RunID:     runID,
		Target:    model.TotalPopulation() / float64(n),
		Alpha:     e.alpha,
		Districts: make([]District, 0, n),
		Runtimes:  make([]time.Duration, 0, n-1),
	}
	log.Info("partition started",
		zap.Int("units", model.Len()),
		zap.Int("edges", model.Graph.EdgeCount()),
		zap.Int("districts", n),
		zap.Float64("target", plan.Target),
		zap.Float64("alpha", e.alpha),
	)

	upper := plan.Target * (1 + e.alpha)
	var oversized []string
	for _, u := range model.Units() {
		if u.Population > upper {
			oversized = append(oversized, u.ID)
		}
	}
	if len(oversized) > 0 {
		// Such units can only land in the last district.
		log.Warn("units exceed the district population window",
			zap.Strings("units", oversized),
			zap.Float64("upper", upper),
		)
	}

	residual := model.Graph.Clone()
	pops := model.Populations()

	for len(plan.Districts) < n-1 {
		number := len(plan.Districts) + 1
		res, err := e.cutter.Cut(ctx, cut.Problem{
			Graph:       residual,
			Target:      plan.Target,
			Alpha:       e.alpha,
			Populations: pops,
		})
		if err != nil {
			e.obs.ObserveCut(0, 0, err)
			log.Error("cut failed", zap.Int("district", number), zap.Error(err))
			return nil, fmt.Errorf("partition: district %d: %w", number, err)
		}
		e.obs.ObserveCut(res.Duration, res.Nodes, nil)

		if err := CheckPopulationWindow(res.Population, plan.Target, e.alpha); err != nil {
			if we, ok := err.(*WindowError); ok {
				we.District = number
			}
			log.Error("population window violated", zap.Int("district", number), zap.Error(err))
			return nil, err
		}

		before := residual.VertexCount()
		residual.RemoveVertices(res.Selected...)
		if err := CheckRemoval(before, residual.VertexCount(), len(res.Selected)); err != nil {
			log.Error("residual graph inconsistent", zap.Int("district", number), zap.Error(err))
			return nil, fmt.Errorf("district %d: %w", number, err)
		}

		d := District{
			Number:     number,
			Units:      append([]string(nil), res.Selected...),
			Population: res.Population,
			CutWeight:  res.CutWeight,
		}
		if err := e.contiguity(ctx, model.Graph, &d, log); err != nil {
			return nil, err
		}
		plan.Districts = append(plan.Districts, d)
		plan.Runtimes = append(plan.Runtimes, res.Duration)

		log.Info("district extracted",
			zap.Int("district", number),
			zap.Int("units", len(d.Units)),
			zap.Float64("population", d.Population),
			zap.Float64("cut_weight", d.CutWeight),
			zap.Int64("bnb_nodes", res.Nodes),
			zap.Duration("runtime", res.Duration),
			zap.Int("remaining", residual.VertexCount()),
		)
	}

	last := District{Number: n, Units: residual.Vertices()}
	pop, err := model.SumPopulation(last.Units)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCoverageMismatch, err)
	}
	last.Population = pop
	if err := e.contiguity(ctx, model.Graph, &last, log); err != nil {
		return nil, err
	}
	plan.Districts = append(plan.Districts, last)

	if err := CheckCoverage(plan.Districts, model.IDs()); err != nil {
		log.Error("coverage check failed", zap.Error(err))
		return nil, err
	}

	fragmented := 0
	for _, d := range plan.Districts {
		if d.Components > 1 {
			fragmented++
		}
	}
	e.obs.ObservePlan(len(plan.Districts), fragmented)
	log.Info("partition finished",
		zap.Int("districts", len(plan.Districts)),
		zap.Int("fragmented", fragmented),
		zap.Duration("total_runtime", plan.TotalRuntime()),
	)

	return plan, nil
}

// contiguity counts the connected pieces of d in the full adjacency graph.
func (e *Engine) contiguity(ctx context.Context, g *core.Graph, d *District, log *zap.Logger) error {
	members := make(map[string]bool, len(d.Units))
	for _, id := range d.Units {
		members[id] = true
	}
	comps, err := bfs.Components(ctx, core.InducedSubgraph(g, members), nil)
	if err != nil {
		return fmt.Errorf("partition: district %d contiguity: %w", d.Number, err)
	}
	d.Components = len(comps)
	if len(comps) > 1 {
		sizes := make([]int, len(comps))
		for i, c := range comps {
			sizes[i] = len(c)
		}
		log.Warn("district is not contiguous",
			zap.Int("district", d.Number),
			zap.Int("components", len(comps)),
			zap.Ints("component_sizes", sizes),
		)
	}

	return nil
}
