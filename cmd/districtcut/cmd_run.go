package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/districtcut/config"
	"github.com/katalvlaran/districtcut/cut"
	"github.com/katalvlaran/districtcut/geo"
	"github.com/katalvlaran/districtcut/metrics"
	"github.com/katalvlaran/districtcut/milp"
	"github.com/katalvlaran/districtcut/partition"
	"github.com/katalvlaran/districtcut/report"
)

var _ partition.Observer = (*metrics.Recorder)(nil)

var errNoInput = errors.New("no input file (use --input or DISTRICTCUT_INPUT)")

type runFlags struct {
	config     string
	input      string
	name       string
	out        string
	districts  int
	alpha      float64
	threads    int
	timeLimit  time.Duration
	relaxation string
	textfile   string
	logLevel   string
	dev        bool
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Partition a map into districts",
		Long: `Load a JSON record file, extract districts one balanced min-cut at a time
and write <out>/district_outputs/<name>.csv and <out>/runtimes/<name>.csv.
Nothing is written when any cut or check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.config, nil)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, &f, &cfg)
			if cfg.Input == "" {
				return errNoInput
			}
			if cfg.Name == "" {
				cfg.Name = strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := cfg.Log.NewLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runPlan(ctx, cfg, log, cmd)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML config file")
	fl.StringVarP(&f.input, "input", "i", "", "JSON record file (env: DISTRICTCUT_INPUT)")
	fl.StringVar(&f.name, "name", "", "Output base name (default: input file name)")
	fl.StringVarP(&f.out, "out", "o", "", "Output directory (env: DISTRICTCUT_OUTPUT_DIR)")
	fl.IntVarP(&f.districts, "districts", "n", 0, "Number of districts (default 4)")
	fl.Float64Var(&f.alpha, "alpha", 0, "Population tolerance (default 0.05)")
	fl.IntVar(&f.threads, "threads", 0, "Solver worker goroutines (default 4)")
	fl.DurationVar(&f.timeLimit, "time-limit", 0, "Per-cut solver budget, 0 = none")
	fl.StringVar(&f.relaxation, "relaxation", "", "Node bound: none (default) or lp")
	fl.StringVar(&f.textfile, "metrics-textfile", "", "Write Prometheus metrics to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error")
	fl.BoolVar(&f.dev, "log-dev", false, "Human-readable development logging")

	return cmd
}

// applyRunFlags overrides cfg with every flag the user actually set.
func applyRunFlags(cmd *cobra.Command, f *runFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = f.input
	}
	if changed("name") {
		cfg.Name = f.name
	}
	if changed("out") {
		cfg.Output.Dir = f.out
	}
	if changed("districts") {
		cfg.Districts = f.districts
	}
	if changed("alpha") {
		cfg.Alpha = f.alpha
	}
	if changed("threads") {
		cfg.Solver.Threads = f.threads
	}
	if changed("time-limit") {
		cfg.Solver.TimeLimit = f.timeLimit
	}
	if changed("relaxation") {
		cfg.Solver.Relaxation = f.relaxation
	}
	if changed("metrics-textfile") {
		cfg.Metrics.Textfile = f.textfile
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-dev") {
		cfg.Log.Development = f.dev
	}
}

func runPlan(ctx context.Context, cfg config.Config, log *zap.Logger, cmd *cobra.Command) error {
	model, err := geo.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	solver := cut.NewSolver(func() milp.Solver { return milp.NewBranchAndBound(opts) })
	engine := partition.NewEngine(solver,
		partition.WithDistricts(cfg.Districts),
		partition.WithAlpha(cfg.Alpha),
		partition.WithLogger(log),
		partition.WithObserver(rec),
	)

	plan, runErr := engine.Run(ctx, model)
	if cfg.Metrics.Textfile != "" {
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Warn("metrics export failed", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	layout := report.Layout{Dir: cfg.Output.Dir, Name: cfg.Name}
	if err := report.Write(layout, plan); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range plan.Districts {
		fmt.Fprintf(out, "district %d: %d units, population %.0f, cut weight %g\n",
			d.Number, len(d.Units), d.Population, d.CutWeight)
	}
	fmt.Fprintf(out, "wrote %s and %s (total solve time %s)\n",
		layout.DistrictsPath(), layout.RuntimesPath(), plan.TotalRuntime().Round(time.Millisecond))

	return nil
}
