// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before a build.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per Build and read by every constructor.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	popFn    PopulationFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		popFn:    DefaultPopulationFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the unit naming scheme. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for every stochastic draw. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge-weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPopulationFn sets the unit-population distribution. Panics on nil.
func WithPopulationFn(fn PopulationFn) BuilderOption {
	if fn == nil {
		panic("builder: WithPopulationFn(nil)")
	}
	return func(c *builderConfig) { c.popFn = fn }
}
