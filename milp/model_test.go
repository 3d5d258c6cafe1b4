package milp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districtcut/milp"
)

func TestModel_Validation(t *testing.T) {
	m := milp.NewModel("v")
	x := m.AddBinary("x")

	err := m.AddConstraint("bad-var", []milp.Term{{Var: 7, Coef: 1}}, milp.LessEq, 1)
	require.ErrorIs(t, err, milp.ErrUnknownVariable)

	err = m.AddConstraint("nan", []milp.Term{{Var: x, Coef: math.NaN()}}, milp.LessEq, 1)
	require.ErrorIs(t, err, milp.ErrBadCoefficient)

	err = m.AddConstraint("inf-rhs", []milp.Term{{Var: x, Coef: 1}}, milp.LessEq, math.Inf(1))
	require.ErrorIs(t, err, milp.ErrBadCoefficient)

	err = m.AddConstraint("sense", []milp.Term{{Var: x, Coef: 1}}, milp.Sense(9), 1)
	require.ErrorIs(t, err, milp.ErrBadSense)

	require.ErrorIs(t, m.Minimize([]milp.Term{{Var: -1, Coef: 1}}), milp.ErrUnknownVariable)
	assert.Equal(t, 0, m.NumConstraints())
}

func TestModel_EvaluateAndCheck(t *testing.T) {
	m := milp.NewModel("e")
	x := m.AddBinary("x")
	y := m.AddBinary("y")
	require.NoError(t, m.AddConstraint("pair", []milp.Term{{Var: x, Coef: 1}, {Var: y, Coef: 1}}, milp.Equal, 1))
	require.NoError(t, m.Minimize([]milp.Term{{Var: x, Coef: 2}, {Var: y, Coef: 3}}))

	assert.Equal(t, 2.0, m.Evaluate([]float64{1, 0}))
	assert.NoError(t, m.Check([]float64{1, 0}, 1e-9))
	assert.Error(t, m.Check([]float64{1, 1}, 1e-9))

	v, ok := m.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, y, v)
	assert.Equal(t, "x", m.VarName(x))
	assert.Equal(t, "", m.VarName(42))
	assert.Len(t, m.Constraints(), 1)
}

func TestParseRelaxation(t *testing.T) {
	r, err := milp.ParseRelaxation("LP")
	require.NoError(t, err)
	assert.Equal(t, milp.LPRelaxation, r)

	r, err = milp.ParseRelaxation("none")
	require.NoError(t, err)
	assert.Equal(t, milp.NoRelaxation, r)

	_, err = milp.ParseRelaxation("barrier")
	assert.ErrorIs(t, err, milp.ErrBadRelaxation)
	assert.Equal(t, "lp", milp.LPRelaxation.String())
}
