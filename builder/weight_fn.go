// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults used when no distribution or no RNG is configured.
const (
	DefaultEdgeWeight        float64 = 1
	DefaultUnitPopulation    float64 = 1000
	minimumNormalBoundaryLen float64 = 0.01
)

// WeightFn draws an adjacency weight (shared-boundary strength, ≥ 0).
type WeightFn func(rng *rand.Rand) float64

// PopulationFn draws a unit population (whole people, ≥ 0).
type PopulationFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// DefaultPopulationFn always returns DefaultUnitPopulation.
func DefaultPopulationFn(_ *rand.Rand) float64 { return DefaultUnitPopulation }

// ConstantWeightFn returns a WeightFn yielding value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples U[min, max). Without an RNG it yields DefaultEdgeWeight.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn samples N(mean, stddev) clipped below at a small positive
// boundary length. Without an RNG it yields DefaultEdgeWeight.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Max(minimumNormalBoundaryLen, rng.NormFloat64()*stddev+mean)
	}
}

// ConstantPopulationFn returns a PopulationFn yielding value. Panics if value < 0.
func ConstantPopulationFn(value float64) PopulationFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantPopulationFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformPopulationFn samples whole numbers in [min, max]. Without an RNG it
// yields the midpoint, rounded. Panics unless 0 ≤ min ≤ max.
func UniformPopulationFn(min, max int) PopulationFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformPopulationFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return math.Round(float64(min+max) / 2)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight sets every edge weight to w.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight draws edge weights from U[min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight draws edge weights from a clipped N(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithConstantPopulation sets every unit population to p.
func WithConstantPopulation(p float64) BuilderOption {
	return WithPopulationFn(ConstantPopulationFn(p))
}

// WithUniformPopulation draws unit populations from whole numbers in [min, max].
func WithUniformPopulation(min, max int) BuilderOption {
	return WithPopulationFn(UniformPopulationFn(min, max))
}
