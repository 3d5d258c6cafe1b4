package cut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/districtcut/core"
	"github.com/katalvlaran/districtcut/milp"
)

// Formulation is a built model plus the handles needed to decode it.
type Formulation struct {
	Model *milp.Model

	// Order is the node enumeration order used by the connectivity rows.
	Order []string

	// X and Y map vertex and edge IDs to their variables.
	X map[string]milp.Var
	Y map[string]milp.Var

	problem Problem
	edges   []*core.Edge
}

// Formulate builds the balanced min-cut program for p.
//
// Complexity: O(V + E) variables and rows.
func Formulate(p Problem) (*Formulation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	g := p.Graph
	order := g.Vertices()
	for _, id := range order {
		if _, ok := p.Populations[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingPopulation, id)
		}
	}

	m := milp.NewModel(fmt.Sprintf("cut-%d", len(order)))
	f := &Formulation{
		Model:   m,
		Order:   order,
		X:       make(map[string]milp.Var, len(order)),
		Y:       make(map[string]milp.Var),
		problem: p,
	}
	for _, id := range order {
		f.X[id] = m.AddBinary("x_" + id)
	}

	var obj []milp.Term
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		y := m.AddBinary("y_" + e.ID)
		f.Y[e.ID] = y
		f.edges = append(f.edges, e)
		xu, xv := f.X[e.From], f.X[e.To]
		rows := []struct {
			suffix string
			terms  []milp.Term
			sense  milp.Sense
			rhs    float64
		}{
			{"ge_uv", []milp.Term{{Var: y, Coef: 1}, {Var: xu, Coef: -1}, {Var: xv, Coef: 1}}, milp.GreaterEq, 0},
			{"ge_vu", []milp.Term{{Var: y, Coef: 1}, {Var: xu, Coef: 1}, {Var: xv, Coef: -1}}, milp.GreaterEq, 0},
			{"le_any", []milp.Term{{Var: y, Coef: 1}, {Var: xu, Coef: -1}, {Var: xv, Coef: -1}}, milp.LessEq, 0},
			{"le_both", []milp.Term{{Var: y, Coef: 1}, {Var: xu, Coef: 1}, {Var: xv, Coef: 1}}, milp.LessEq, 2},
		}
		for _, r := range rows {
			if err := m.AddConstraint("cut_"+r.suffix+"_"+e.ID, r.terms, r.sense, r.rhs); err != nil {
				return nil, err
			}
		}
		obj = append(obj, milp.Term{Var: y, Coef: e.Weight})
	}

	pop := make([]milp.Term, 0, len(order))
	for _, id := range order {
		pop = append(pop, milp.Term{Var: f.X[id], Coef: p.Populations[id]})
	}
	lo, hi := p.Window()
	if err := m.AddConstraint("pop_hi", pop, milp.LessEq, hi); err != nil {
		return nil, err
	}
	if err := m.AddConstraint("pop_lo", pop, milp.GreaterEq, lo); err != nil {
		return nil, err
	}

	if err := f.addConnectivity(); err != nil {
		return nil, err
	}
	if err := m.Minimize(obj); err != nil {
		return nil, err
	}

	return f, nil
}

// addConnectivity emits S_i + L_i x_i ≥ L_i for every node with at least one
// earlier neighbour.
func (f *Formulation) addConnectivity() error {
	pos := make(map[string]int, len(f.Order))
	for i, id := range f.Order {
		pos[id] = i
	}
	for i, id := range f.Order {
		incident, err := f.problem.Graph.Neighbors(id)
		if err != nil {
			return err
		}
		var (
			terms []milp.Term
			lower float64
		)
		for _, e := range incident {
			other := e.Other(id)
			if other == id || pos[other] >= i {
				continue
			}
			terms = append(terms, milp.Term{Var: f.X[other], Coef: e.Weight})
			lower += math.Min(0, e.Weight)
		}
		if len(terms) == 0 {
			continue
		}
		terms = append(terms, milp.Term{Var: f.X[id], Coef: lower})
		if err := f.Model.AddConstraint("conn_"+id, terms, milp.GreaterEq, lower); err != nil {
			return err
		}
	}

	return nil
}

// Decode turns solved values into a Result. Every x and y must be within tol
// of 0 or 1 and every y must equal x_u XOR x_v.
func (f *Formulation) Decode(sol *milp.Solution, tol float64) (*Result, error) {
	if sol == nil || len(sol.Values) != f.Model.NumVars() {
		return nil, fmt.Errorf("%w: expected %d values", ErrInconsistentSolution, f.Model.NumVars())
	}

	res := &Result{
		Assignment: make(map[string]bool, len(f.Order)),
		Indicators: make(map[string]bool, len(f.edges)),
		Objective:  sol.Objective,
		Nodes:      sol.Nodes,
	}
	for _, id := range f.Order {
		side, ok := binary(sol.Value(f.X[id]), tol)
		if !ok {
			return nil, fmt.Errorf("%w: x_%s = %g", ErrInconsistentSolution, id, sol.Value(f.X[id]))
		}
		res.Assignment[id] = side
		if side {
			res.Selected = append(res.Selected, id)
			res.Population += f.problem.Populations[id]
		}
	}
	for _, e := range f.edges {
		y, ok := binary(sol.Value(f.Y[e.ID]), tol)
		if !ok || y != (res.Assignment[e.From] != res.Assignment[e.To]) {
			return nil, fmt.Errorf("%w: y_%s = %g for %s-%s", ErrInconsistentSolution,
				e.ID, sol.Value(f.Y[e.ID]), e.From, e.To)
		}
		res.Indicators[e.ID] = y
	}
	res.CutWeight = f.problem.Graph.CutWeight(res.Assignment)

	return res, nil
}

func binary(v, tol float64) (bool, bool) {
	switch {
	case math.Abs(v) <= tol:
		return false, true
	case math.Abs(v-1) <= tol:
		return true, true
	default:
		return false, false
	}
}
