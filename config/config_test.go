package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/districtcut/config"
	"github.com/katalvlaran/districtcut/milp"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Districts)
	assert.Equal(t, 0.05, cfg.Alpha)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, 4, opts.Threads)
	assert.Equal(t, milp.NoRelaxation, opts.Relaxation)
	assert.Zero(t, opts.TimeLimit)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
districts: 7
alpha: 0.02
input: map_data/alabama.json
solver:
  threads: 2
  time_limit: 90s
  relaxation: lp
output:
  dir: out
log:
  level: debug
`), 0o600))

	cfg, err := config.Load(path, env(map[string]string{
		"DISTRICTCUT_DISTRICTS":        "5",
		"DISTRICTCUT_OUTPUT_DIR":       "/tmp/plans",
		"DISTRICTCUT_METRICS_TEXTFILE": "/var/lib/node_exporter/districtcut.prom",
	}))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.Districts, "env overrides file")
	assert.Equal(t, 0.02, cfg.Alpha)
	assert.Equal(t, "map_data/alabama.json", cfg.Input)
	assert.Equal(t, 2, cfg.Solver.Threads)
	assert.Equal(t, 90*time.Second, cfg.Solver.TimeLimit)
	assert.Equal(t, "/tmp/plans", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/lib/node_exporter/districtcut.prom", cfg.Metrics.Textfile)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, milp.LPRelaxation, opts.Relaxation)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), env(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("distrcts: 3\n"), 0o600))
	_, err = config.Load(path, env(nil))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load("", env(map[string]string{"DISTRICTCUT_ALPHA": "five percent"}))
	assert.ErrorIs(t, err, config.ErrBadEnv)

	cfg, err := config.Load("", env(map[string]string{"DISTRICTCUT_TIME_LIMIT": "2m"}))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Solver.TimeLimit)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"districts":        func(c *config.Config) { c.Districts = 0 },
		"alpha below zero": func(c *config.Config) { c.Alpha = -0.01 },
		"alpha one":        func(c *config.Config) { c.Alpha = 1 },
		"threads":          func(c *config.Config) { c.Solver.Threads = 0 },
		"relax":            func(c *config.Config) { c.Solver.Relaxation = "simplex" },
		"timeout":          func(c *config.Config) { c.Solver.TimeLimit = -time.Second },
		"outdir":           func(c *config.Config) { c.Output.Dir = "" },
		"level":            func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestValidate_ExactBalance(t *testing.T) {
	cfg := config.Default()
	cfg.Alpha = 0
	require.NoError(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	log, err := config.LogConfig{Level: "warn"}.NewLogger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = config.LogConfig{Level: "loud"}.NewLogger()
	assert.Error(t, err)
}
