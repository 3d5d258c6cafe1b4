// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districtcut/builder"
)

func TestGrid_Shape(t *testing.T) {
	recs, err := builder.Build(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	require.Len(t, recs, 6)

	// Unit 0 is the top-left corner: right (1) and bottom (3) neighbours.
	assert.Equal(t, "0", recs[0].GEOID)
	assert.ElementsMatch(t, []int{1, 3}, recs[0].Adj)
	// Unit 4 is bottom-middle: left, right, top.
	assert.ElementsMatch(t, []int{3, 5, 1}, recs[4].Adj)
	for _, r := range recs {
		assert.Equal(t, builder.DefaultUnitPopulation, r.Pop)
		assert.Len(t, r.Weights, len(r.Adj))
	}

	m, err := builder.BuildModel(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 7, m.Graph.EdgeCount())
	assert.Equal(t, 6*builder.DefaultUnitPopulation, m.TotalPopulation())
}

func TestPath_AndComposition(t *testing.T) {
	m, err := builder.BuildModel(
		[]builder.BuilderOption{builder.WithPrefixIDs("P"), builder.WithConstantWeight(2.5)},
		builder.Path(3), builder.Grid(1, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"P0", "P1", "P2", "P3", "P4"}, m.IDs())
	assert.Equal(t, 3, m.Graph.EdgeCount())
	assert.True(t, m.Graph.HasEdge("P3", "P4"))
	assert.False(t, m.Graph.HasEdge("P2", "P3"))
	assert.Equal(t, 7.5, m.Graph.Stats().TotalWeight)
}

func TestBuild_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithUniformPopulation(800, 1200),
			builder.WithUniformWeight(0.5, 3),
			builder.WithFIPSIDs(1),
		}
	}
	a, err := builder.Build(opts(), builder.Grid(4, 4))
	require.NoError(t, err)
	b, err := builder.Build(opts(), builder.Grid(4, 4))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, "01001", a[0].GEOID)
	assert.Equal(t, "01003", a[1].GEOID)
	for _, r := range a {
		assert.GreaterOrEqual(t, r.Pop, 800.0)
		assert.LessOrEqual(t, r.Pop, 1200.0)
		for _, w := range r.Weights {
			assert.GreaterOrEqual(t, w, 0.5)
			assert.Less(t, w, 3.0)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	constID := builder.WithIDScheme(func(int) string { return "same" })
	_, err = builder.Build([]builder.BuilderOption{constID}, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrDuplicateUnit)
}

func TestDistributions(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 4)(nil))
	assert.Equal(t, 1000.0, builder.UniformPopulationFn(500, 1500)(nil))
	assert.Equal(t, 3.0, builder.ConstantWeightFn(3)(nil))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Greater(t, builder.NormalWeightFn(0, 1)(rng), 0.0)
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
	assert.Panics(t, func() { builder.UniformPopulationFn(-1, 1) })
	assert.Panics(t, func() { builder.FIPSIDFn(0) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
