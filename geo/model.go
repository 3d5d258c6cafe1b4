package geo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/districtcut/core"
)

// Model is the loaded map. Graph is shared and must be cloned before mutation.
type Model struct {
	Graph *core.Graph

	units []Unit
	pop   map[string]float64
	total float64
}

type pairKey struct{ a, b string }

func newPairKey(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}
	return pairKey{u, v}
}

// NewModel validates records and builds the graph.
//
// Complexity: O(N + A) for N records and A adjacency entries.
func NewModel(records []Record) (*Model, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	m := &Model{
		Graph: core.NewGraph(),
		units: make([]Unit, 0, len(records)),
		pop:   make(map[string]float64, len(records)),
	}
	for i, r := range records {
		switch {
		case r.GEOID == "":
			return nil, &RecordError{Index: i, Err: ErrEmptyID}
		case math.IsNaN(r.Pop) || math.IsInf(r.Pop, 0) || r.Pop < 0:
			return nil, &RecordError{Index: i, GEOID: r.GEOID, Err: ErrBadPopulation}
		case len(r.Adj) != len(r.Weights):
			return nil, &RecordError{Index: i, GEOID: r.GEOID,
				Err: fmt.Errorf("%w: %d vs %d", ErrWeightsMismatch, len(r.Adj), len(r.Weights))}
		}
		if _, dup := m.pop[r.GEOID]; dup {
			return nil, &RecordError{Index: i, GEOID: r.GEOID, Err: ErrDuplicateID}
		}
		if err := m.Graph.AddVertex(r.GEOID); err != nil {
			return nil, &RecordError{Index: i, GEOID: r.GEOID, Err: err}
		}
		m.units = append(m.units, Unit{ID: r.GEOID, Population: r.Pop})
		m.pop[r.GEOID] = r.Pop
		m.total += r.Pop
	}

	// Collect pairs first so a repeated pair keeps its latest weight.
	weights := make(map[pairKey]float64)
	var order []pairKey
	for i, r := range records {
		for k, j := range r.Adj {
			if j < 0 || j >= len(records) {
				return nil, &RecordError{Index: i, GEOID: r.GEOID,
					Err: fmt.Errorf("%w: %d", ErrAdjacencyIndex, j)}
			}
			w := r.Weights[k]
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, &RecordError{Index: i, GEOID: r.GEOID,
					Err: fmt.Errorf("%w: %v", ErrInconsistentWeights, w)}
			}
			if j == i {
				continue
			}
			key := newPairKey(r.GEOID, records[j].GEOID)
			if _, seen := weights[key]; !seen {
				order = append(order, key)
			}
			weights[key] = w
		}
	}
	for _, key := range order {
		if _, err := m.Graph.AddEdge(key.a, key.b, weights[key]); err != nil {
			return nil, fmt.Errorf("geo: edge %s-%s: %w", key.a, key.b, err)
		}
	}

	return m, nil
}

// Units returns the units in input order.
func (m *Model) Units() []Unit { return append([]Unit(nil), m.units...) }

// IDs returns unit IDs in input order.
func (m *Model) IDs() []string {
	out := make([]string, len(m.units))
	for i, u := range m.units {
		out[i] = u.ID
	}

	return out
}

// Len returns the number of units.
func (m *Model) Len() int { return len(m.units) }

// Population returns the population of id.
func (m *Model) Population(id string) (float64, error) {
	p, ok := m.pop[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, id)
	}

	return p, nil
}

// Populations returns a copy of the identity→population table.
func (m *Model) Populations() map[string]float64 {
	out := make(map[string]float64, len(m.pop))
	for k, v := range m.pop {
		out[k] = v
	}

	return out
}

// TotalPopulation returns Σ population.
func (m *Model) TotalPopulation() float64 { return m.total }

// SumPopulation returns Σ population over ids; unknown IDs are an error.
func (m *Model) SumPopulation(ids []string) (float64, error) {
	var sum float64
	for _, id := range ids {
		p, err := m.Population(id)
		if err != nil {
			return 0, err
		}
		sum += p
	}

	return sum, nil
}

// Records renders the model back into input records (input order).
func (m *Model) Records() ([]Record, error) {
	index := make(map[string]int, len(m.units))
	for i, u := range m.units {
		index[u.ID] = i
	}
	out := make([]Record, len(m.units))
	for i, u := range m.units {
		edges, err := m.Graph.Neighbors(u.ID)
		if err != nil {
			return nil, err
		}
		rec := Record{GEOID: u.ID, Pop: u.Population, Adj: []int{}, Weights: []float64{}}
		for _, e := range edges {
			rec.Adj = append(rec.Adj, index[e.Other(u.ID)])
			rec.Weights = append(rec.Weights, e.Weight)
		}
		out[i] = rec
	}

	return out, nil
}
