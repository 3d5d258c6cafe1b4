// SPDX-License-Identifier: MIT
//
// api.go - Build orchestrator and the sheet constructors write into.
//
// Design contract:
//   - Build resolves options once, runs constructors in order, then renders
//     records in unit insertion order with adjacency indices into that order.
//   - Constructors never panic; they return sentinel errors wrapped with their
//     method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/districtcut/core"
	"github.com/katalvlaran/districtcut/geo"
)

// Constructor adds units and adjacencies to a sheet using the resolved config.
type Constructor func(s *sheet, cfg builderConfig) error

// sheet accumulates a map under construction.
type sheet struct {
	g     *core.Graph
	order []string
	pop   map[string]float64
}

func (s *sheet) addUnit(method, id string, cfg builderConfig) error {
	if _, dup := s.pop[id]; dup {
		return fmt.Errorf("%s: unit %q: %w", method, id, ErrDuplicateUnit)
	}
	if err := s.g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	s.order = append(s.order, id)
	s.pop[id] = cfg.popFn(cfg.rng)

	return nil
}

func (s *sheet) link(method, u, v string, cfg builderConfig) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := s.g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// Build runs cons in order and returns the resulting records.
// Any constructor error is wrapped with "Build: %w".
func Build(bopts []BuilderOption, cons ...Constructor) ([]geo.Record, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sheet{g: core.NewGraph(), pop: make(map[string]float64)}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if len(s.order) == 0 {
		return nil, fmt.Errorf("Build: no units: %w", ErrConstructFailed)
	}

	index := make(map[string]int, len(s.order))
	for i, id := range s.order {
		index[id] = i
	}
	recs := make([]geo.Record, len(s.order))
	for i, id := range s.order {
		edges, err := s.g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		rec := geo.Record{GEOID: id, Pop: s.pop[id], Adj: []int{}, Weights: []float64{}}
		for _, e := range edges {
			rec.Adj = append(rec.Adj, index[e.Other(id)])
			rec.Weights = append(rec.Weights, e.Weight)
		}
		recs[i] = rec
	}

	return recs, nil
}

// BuildModel is Build followed by geo.NewModel.
func BuildModel(bopts []BuilderOption, cons ...Constructor) (*geo.Model, error) {
	recs, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return geo.NewModel(recs)
}
