// Package config loads run settings from defaults, an optional YAML file and
// DISTRICTCUT_* environment variables, in that order. Command-line flags are
// applied on top by the caller before Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/districtcut/milp"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DISTRICTCUT_"

// Sentinel errors.
var (
	ErrInvalid = errors.New("config: invalid configuration")
	ErrBadEnv  = errors.New("config: bad environment value")
)

// Config is the full run configuration.
type Config struct {
	// Districts is the number of districts to produce.
	Districts int `yaml:"districts" validate:"min=1,max=64"`

	// Alpha is the population tolerance around the per-district target; 0
	// demands exact balance.
	Alpha float64 `yaml:"alpha" validate:"gte=0,lt=1"`

	// Input is the JSON record file.
	Input string `yaml:"input"`

	// Name names the output files; defaults to the input base name.
	Name string `yaml:"name"`

	Solver  SolverConfig  `yaml:"solver"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SolverConfig tunes the branch-and-bound engine.
type SolverConfig struct {
	Threads    int           `yaml:"threads" validate:"min=1,max=256"`
	TimeLimit  time.Duration `yaml:"time_limit" validate:"gte=0"`
	Relaxation string        `yaml:"relaxation" validate:"oneof=lp none"`
}

// OutputConfig locates the CSV tables.
type OutputConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// MetricsConfig enables the Prometheus textfile export when Textfile is set.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Districts: 4,
		Alpha:     0.05,
		Solver: SolverConfig{
			Threads:    4,
			Relaxation: "none",
		},
		Output: OutputConfig{Dir: "."},
		Log:    LogConfig{Level: "info"},
	}
}

// Load layers the YAML file at path (skipped when empty) and the environment
// seen through lookup (os.LookupEnv when nil) over Default. It does not validate.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, set func(string) error) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			if err := set(v); err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrBadEnv, EnvPrefix, key, v, err))
			}
		}
	}

	num("DISTRICTS", func(v string) (err error) { cfg.Districts, err = strconv.Atoi(v); return })
	num("ALPHA", func(v string) (err error) { cfg.Alpha, err = strconv.ParseFloat(v, 64); return })
	num("THREADS", func(v string) (err error) { cfg.Solver.Threads, err = strconv.Atoi(v); return })
	num("TIME_LIMIT", func(v string) (err error) { cfg.Solver.TimeLimit, err = time.ParseDuration(v); return })
	num("LOG_DEVELOPMENT", func(v string) (err error) { cfg.Log.Development, err = strconv.ParseBool(v); return })
	str("RELAXATION", &cfg.Solver.Relaxation)
	str("INPUT", &cfg.Input)
	str("NAME", &cfg.Name)
	str("OUTPUT_DIR", &cfg.Output.Dir)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("METRICS_TEXTFILE", &cfg.Metrics.Textfile)

	return errors.Join(errs...)
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fieldMessage(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// SolverOptions maps the solver section onto milp.Options.
func (c Config) SolverOptions() (milp.Options, error) {
	opts := milp.DefaultOptions()
	rel, err := milp.ParseRelaxation(c.Solver.Relaxation)
	if err != nil {
		return opts, err
	}
	opts.Relaxation = rel
	opts.Threads = c.Solver.Threads
	opts.TimeLimit = c.Solver.TimeLimit

	return opts, nil
}

// NewLogger builds the production or development zap preset at c.Level.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
