package partition_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/districtcut/cut"
	"github.com/katalvlaran/districtcut/geo"
	"github.com/katalvlaran/districtcut/milp"
	"github.com/katalvlaran/districtcut/partition"
)

func sequentialCutter() *cut.Solver {
	return cut.NewSolver(func() milp.Solver {
		opts := milp.DefaultOptions()
		opts.Threads = 1
		return milp.NewBranchAndBound(opts)
	})
}

// pathModel is A-B-C-D with unit weights and the given populations.
func pathModel(t *testing.T, pops ...float64) *geo.Model {
	t.Helper()
	ids := []string{"A", "B", "C", "D"}
	recs := make([]geo.Record, len(pops))
	for i := range pops {
		recs[i] = geo.Record{GEOID: ids[i], Pop: pops[i], Adj: []int{}, Weights: []float64{}}
		if i+1 < len(pops) {
			recs[i].Adj = append(recs[i].Adj, i+1)
			recs[i].Weights = append(recs[i].Weights, 1)
		}
	}
	m, err := geo.NewModel(recs)
	require.NoError(t, err)

	return m
}

// gridModel is an r×c lattice with unit weights and population 10 per cell.
func gridModel(t *testing.T, r, c int) *geo.Model {
	t.Helper()
	recs := make([]geo.Record, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec := geo.Record{GEOID: fmt.Sprintf("%02d", i*c+j), Pop: 10}
			if j+1 < c {
				rec.Adj = append(rec.Adj, i*c+j+1)
				rec.Weights = append(rec.Weights, 1)
			}
			if i+1 < r {
				rec.Adj = append(rec.Adj, (i+1)*c+j)
				rec.Weights = append(rec.Weights, 1)
			}
			recs = append(recs, rec)
		}
	}
	m, err := geo.NewModel(recs)
	require.NoError(t, err)

	return m
}

// spy records Observer calls.
type spy struct {
	cuts       int
	failures   int
	districts  int
	fragmented int
}

func (s *spy) ObserveCut(_ time.Duration, _ int64, err error) {
	s.cuts++
	if err != nil {
		s.failures++
	}
}

func (s *spy) ObservePlan(districts, fragmented int) {
	s.districts, s.fragmented = districts, fragmented
}

func TestRun_PathScenario(t *testing.T) {
	model := pathModel(t, 25, 25, 25, 25)
	obs := &spy{}
	plan, err := partition.NewEngine(sequentialCutter(),
		partition.WithDistricts(2),
		partition.WithObserver(obs),
		partition.WithRunID("test-run"),
	).Run(context.Background(), model)
	require.NoError(t, err)

	require.Len(t, plan.Districts, 2)
	require.Len(t, plan.Runtimes, 1)
	assert.Equal(t, "test-run", plan.RunID)
	assert.Equal(t, 50.0, plan.Target)

	first, last := plan.Districts[0], plan.Districts[1]
	assert.Contains(t, [][]string{{"A", "B"}, {"C", "D"}}, first.Units)
	assert.Equal(t, 1.0, first.CutWeight)
	assert.Equal(t, 50.0, first.Population)
	assert.Equal(t, 50.0, last.Population)
	assert.Equal(t, 1, first.Components)
	assert.Equal(t, 1, last.Components)
	assert.Equal(t, 2, last.Number)

	assert.Equal(t, 1, obs.cuts)
	assert.Equal(t, 2, obs.districts)
	assert.Equal(t, 0, obs.fragmented)

	// The input model is untouched.
	assert.Equal(t, 4, model.Graph.VertexCount())
	assert.Equal(t, 3, model.Graph.EdgeCount())
}

// countingCutter counts its calls and rejects every cut.
type countingCutter struct{ calls int }

func (c *countingCutter) Cut(context.Context, cut.Problem) (*cut.Result, error) {
	c.calls++
	return nil, fmt.Errorf("unexpected cut")
}

func TestRun_SingleDistrict(t *testing.T) {
	cc := &countingCutter{}
	plan, err := partition.NewEngine(cc, partition.WithDistricts(1)).
		Run(context.Background(), pathModel(t, 1, 2, 3, 4))
	require.NoError(t, err)

	assert.Zero(t, cc.calls)
	assert.Empty(t, plan.Runtimes)
	require.Len(t, plan.Districts, 1)
	assert.Equal(t, []string{"A", "B", "C", "D"}, plan.Districts[0].Units)
	assert.Equal(t, 10.0, plan.Districts[0].Population)
	assert.Zero(t, plan.TotalRuntime())
}

func TestRun_GridCoverage(t *testing.T) {
	model := gridModel(t, 3, 4)
	plan, err := partition.NewEngine(sequentialCutter(), partition.WithDistricts(3)).
		Run(context.Background(), model)
	require.NoError(t, err)

	require.Len(t, plan.Districts, 3)
	require.Len(t, plan.Runtimes, 2)
	require.NoError(t, partition.CheckCoverage(plan.Districts, model.IDs()))

	assignment := plan.Assignment()
	assert.Len(t, assignment, 12)
	for _, d := range plan.Districts[:2] {
		// Target 40, window [38, 42], cells of 10: exactly four units.
		assert.Len(t, d.Units, 4)
		assert.NoError(t, partition.CheckPopulationWindow(d.Population, plan.Target, plan.Alpha))
	}
}

func TestRun_DefaultEngineOnGrid(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	model := gridModel(t, 5, 5)
	plan, err := partition.NewEngine(nil, partition.WithDistricts(5)).Run(ctx, model)
	require.NoError(t, err)

	require.Len(t, plan.Districts, 5)
	require.NoError(t, partition.CheckCoverage(plan.Districts, model.IDs()))
	for _, d := range plan.Districts {
		assert.Len(t, d.Units, 5)
		assert.Equal(t, 50.0, d.Population)
	}
}

func TestRun_Infeasible(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	_, err := partition.NewEngine(sequentialCutter(),
		partition.WithDistricts(2),
		partition.WithLogger(zap.New(core)),
	).Run(context.Background(), pathModel(t, 10, 100))
	require.ErrorIs(t, err, cut.ErrSolverFailure)
	require.ErrorIs(t, err, milp.ErrInfeasible)

	// Target 55, upper bound 57.75: B alone is too large.
	oversized := logs.FilterMessage("units exceed the district population window").All()
	require.Len(t, oversized, 1)
	assert.Equal(t, []interface{}{"B"}, oversized[0].ContextMap()["units"])
}

func TestRun_BadInput(t *testing.T) {
	e := partition.NewEngine(nil, partition.WithDistricts(0))
	_, err := e.Run(context.Background(), pathModel(t, 1, 1))
	assert.ErrorIs(t, err, partition.ErrBadDistrictCount)

	_, err = partition.NewEngine(nil, partition.WithDistricts(3)).Run(context.Background(), pathModel(t, 1, 1))
	assert.ErrorIs(t, err, partition.ErrBadDistrictCount)

	_, err = partition.NewEngine(nil).Run(context.Background(), nil)
	assert.ErrorIs(t, err, partition.ErrNilModel)

	_, err = partition.NewEngine(nil, partition.WithDistricts(2), partition.WithAlpha(1.5)).
		Run(context.Background(), pathModel(t, 1, 1))
	assert.ErrorIs(t, err, cut.ErrBadAlpha)
}

// scriptedCutter returns a fixed selection.
type scriptedCutter struct {
	selected   []string
	population float64
}

func (s scriptedCutter) Cut(_ context.Context, p cut.Problem) (*cut.Result, error) {
	return &cut.Result{
		Selected:   s.selected,
		Population: s.population,
		Duration:   time.Millisecond,
	}, nil
}

func TestRun_ValidatorsAreFatal(t *testing.T) {
	model := pathModel(t, 25, 25, 25, 25)

	_, err := partition.NewEngine(scriptedCutter{selected: []string{"A"}, population: 25},
		partition.WithDistricts(2)).Run(context.Background(), model)
	require.ErrorIs(t, err, partition.ErrPopulationWindow)
	var we *partition.WindowError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 1, we.District)
	assert.Equal(t, 25.0, we.Population)

	_, err = partition.NewEngine(scriptedCutter{selected: []string{"A", "A"}, population: 50},
		partition.WithDistricts(2)).Run(context.Background(), model)
	require.ErrorIs(t, err, partition.ErrGraphMutation)

	_, err = partition.NewEngine(scriptedCutter{selected: []string{"A", "Z"}, population: 50},
		partition.WithDistricts(2)).Run(context.Background(), model)
	require.ErrorIs(t, err, partition.ErrGraphMutation)
}

func TestRun_ReportsFragmentedDistricts(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	obs := &spy{}

	plan, err := partition.NewEngine(scriptedCutter{selected: []string{"A", "C"}, population: 50},
		partition.WithDistricts(2),
		partition.WithLogger(zap.New(core)),
		partition.WithObserver(obs),
	).Run(context.Background(), pathModel(t, 25, 25, 25, 25))
	require.NoError(t, err)

	assert.Equal(t, 2, plan.Districts[0].Components)
	assert.Equal(t, []string{"B", "D"}, plan.Districts[1].Units)
	assert.Equal(t, 2, plan.Districts[1].Components)
	assert.Equal(t, 2, obs.fragmented)
	assert.Equal(t, 2, logs.FilterMessage("district is not contiguous").Len())
}

func TestRun_FailureIsObserved(t *testing.T) {
	obs := &spy{}
	_, err := partition.NewEngine(&countingCutter{}, partition.WithDistricts(2), partition.WithObserver(obs)).
		Run(context.Background(), pathModel(t, 25, 25, 25, 25))
	require.Error(t, err)
	assert.Equal(t, 1, obs.failures)
}
