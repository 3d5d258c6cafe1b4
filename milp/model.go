// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Model construction (binary variables, linear rows, objective).
// Determinism:
//   - Variables are numbered in creation order; rows keep insertion order.
// Concurrency:
//   - A Model is not safe for concurrent mutation. Solving never mutates it.

package milp

import (
	"fmt"
	"math"
)

// Model is a pure 0/1 program: minimise Σ c·x subject to linear rows.
type Model struct {
	name  string
	vars  []string
	rows  []Constraint
	obj   []Term
	index map[string]Var
}

// NewModel returns an empty model with the given name (used in errors and logs).
func NewModel(name string) *Model {
	return &Model{name: name, index: make(map[string]Var)}
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// AddBinary adds a 0/1 variable and returns its handle.
// Names are informational; a repeated name still creates a new variable and
// Lookup resolves to the latest one.
func (m *Model) AddBinary(name string) Var {
	v := Var(len(m.vars))
	m.vars = append(m.vars, name)
	m.index[name] = v

	return v
}

// Lookup returns the handle registered under name.
func (m *Model) Lookup(name string) (Var, bool) {
	v, ok := m.index[name]
	return v, ok
}

// NumVars returns the number of variables.
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstraints returns the number of rows.
func (m *Model) NumConstraints() int { return len(m.rows) }

// VarName returns the name of v, or "" for an unknown handle.
func (m *Model) VarName(v Var) string {
	if !m.owns(v) {
		return ""
	}
	return m.vars[v]
}

// AddConstraint appends Σ terms (sense) rhs. Terms are copied.
func (m *Model) AddConstraint(name string, terms []Term, sense Sense, rhs float64) error {
	if sense != LessEq && sense != GreaterEq && sense != Equal {
		return fmt.Errorf("%w: constraint %q: %v", ErrBadSense, name, sense)
	}
	if !finite(rhs) {
		return fmt.Errorf("%w: constraint %q rhs", ErrBadCoefficient, name)
	}
	if err := m.checkTerms(name, terms); err != nil {
		return err
	}
	m.rows = append(m.rows, Constraint{
		Name:  name,
		Terms: append([]Term(nil), terms...),
		Sense: sense,
		RHS:   rhs,
	})

	return nil
}

// Minimize replaces the objective with Σ terms.
func (m *Model) Minimize(terms []Term) error {
	if err := m.checkTerms("objective", terms); err != nil {
		return err
	}
	m.obj = append([]Term(nil), terms...)

	return nil
}

// Constraints returns a copy of the rows.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.rows))
	for i, r := range m.rows {
		out[i] = r
		out[i].Terms = append([]Term(nil), r.Terms...)
	}

	return out
}

// Evaluate returns the objective value of values (indexed by Var).
func (m *Model) Evaluate(values []float64) float64 {
	var sum float64
	for _, t := range m.obj {
		sum += t.Coef * at(values, t.Var)
	}

	return sum
}

// Check reports the first row violated by values beyond tol, or nil.
func (m *Model) Check(values []float64, tol float64) error {
	for _, r := range m.rows {
		var act float64
		for _, t := range r.Terms {
			act += t.Coef * at(values, t.Var)
		}
		if !satisfied(act, r.Sense, r.RHS, tol) {
			return fmt.Errorf("milp: constraint %q violated: %g %v %g", r.Name, act, r.Sense, r.RHS)
		}
	}

	return nil
}

func (m *Model) owns(v Var) bool { return int(v) >= 0 && int(v) < len(m.vars) }

func (m *Model) checkTerms(where string, terms []Term) error {
	for _, t := range terms {
		if !m.owns(t.Var) {
			return fmt.Errorf("%w: %s references %d", ErrUnknownVariable, where, t.Var)
		}
		if !finite(t.Coef) {
			return fmt.Errorf("%w: %s, variable %q", ErrBadCoefficient, where, m.vars[t.Var])
		}
	}

	return nil
}

func satisfied(act float64, sense Sense, rhs, tol float64) bool {
	switch sense {
	case LessEq:
		return act <= rhs+tol
	case GreaterEq:
		return act >= rhs-tol
	default:
		return math.Abs(act-rhs) <= tol
	}
}

func at(values []float64, v Var) float64 {
	if int(v) < 0 || int(v) >= len(values) {
		return 0
	}
	return values[v]
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
