package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districtcut/metrics"
	"github.com/katalvlaran/districtcut/milp"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeInfeasible, metrics.Outcome(fmt.Errorf("x: %w", milp.ErrInfeasible)))
	assert.Equal(t, metrics.OutcomeTimeLimit, metrics.Outcome(milp.ErrTimeLimit))
	assert.Equal(t, metrics.OutcomeCanceled, metrics.Outcome(context.Canceled))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(errors.New("boom")))
}

func TestRecorder(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveCut(200*time.Millisecond, 40, nil)
	r.ObserveCut(100*time.Millisecond, 2, nil)
	r.ObserveCut(0, 0, milp.ErrInfeasible)
	r.ObservePlan(4, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.CutsTotal.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CutsTotal.WithLabelValues(metrics.OutcomeInfeasible)))
	assert.Equal(t, 42.0, testutil.ToFloat64(r.NodesTotal))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.Districts))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Fragmented))
	assert.Equal(t, 1, testutil.CollectAndCount(r.SolveSeconds))

	// Independent registries.
	other := metrics.NewRecorder()
	assert.Equal(t, 0.0, testutil.ToFloat64(other.NodesTotal))
}

func TestWriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveCut(time.Second, 7, nil)

	path := filepath.Join(t.TempDir(), "districtcut.prom")
	require.NoError(t, r.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "districtcut_bnb_nodes_total 7")
	assert.Contains(t, string(body), `districtcut_cuts_total{outcome="ok"} 1`)
}
