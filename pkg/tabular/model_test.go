package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/constraint-framework/tabular/pkg/tabular"
)

func TestBoolVarNot(t *testing.T) {
	m := tabular.NewModel()
	b := m.NewBoolVar("b")

	assert.False(t, b.IsNegated())
	assert.True(t, b.Not().IsNegated())
	assert.Equal(t, b, b.Not().Not())
	assert.Equal(t, "b", b.Not().Name())
	assert.Equal(t, "!b", b.Not().String())
}

func TestAutoNaming(t *testing.T) {
	m := tabular.NewModel()
	b0 := m.NewBoolVar("")
	b1 := m.NewBoolVar("")
	x0 := m.NewIntVar(0, 1, "")

	assert.Equal(t, "b0", b0.Name())
	assert.Equal(t, "b1", b1.Name())
	assert.Equal(t, "x0", x0.Name())
}

func TestIntVarDomain(t *testing.T) {
	m := tabular.NewModel()
	v := m.NewIntVar(2, 7, "v")

	lb, ub := v.Domain()
	assert.Equal(t, 2, lb)
	assert.Equal(t, 7, ub)
	assert.NoError(t, m.Err())
}

func TestInvalidDomain(t *testing.T) {
	m := tabular.NewModel()
	m.NewIntVar(-1, 3, "neg")
	assert.Error(t, m.Err())

	m = tabular.NewModel()
	m.NewIntVar(5, 4, "empty")
	assert.Error(t, m.Err())
}

func TestForeignLiteralIsRejected(t *testing.T) {
	m := tabular.NewModel()
	other := tabular.NewModel()
	foreign := other.NewBoolVar("foreign")

	m.AddBoolOr(foreign)
	assert.Error(t, m.Err())
}

func TestForeignEnforcementLiteralIsRejected(t *testing.T) {
	m := tabular.NewModel()
	b := m.NewBoolVar("b")
	other := tabular.NewModel()
	foreign := other.NewBoolVar("foreign")

	m.AddBoolOr(b).OnlyEnforceIf(foreign)
	assert.Error(t, m.Err())
}

func TestEmptyConstraintIsRejected(t *testing.T) {
	m := tabular.NewModel()
	m.AddExactlyOne()
	assert.Error(t, m.Err())
}

func TestLinearExpr(t *testing.T) {
	m := tabular.NewModel()
	x := m.NewIntVar(0, 5, "x")
	y := m.NewIntVar(0, 5, "y")

	expr := tabular.Sum(x).AddTerm(y, 3)
	assert.Equal(t, []tabular.Term{{Var: x, Coeff: 1}, {Var: y, Coeff: 3}}, expr.Terms())
	assert.Equal(t, "x + 3*y", expr.String())
}

func TestConstraintString(t *testing.T) {
	m := tabular.NewModel()
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	v := m.NewIntVar(0, 4, "v")

	type tc struct {
		Name       string
		Constraint *tabular.Constraint
		Expected   string
	}

	for _, tt := range []tc{
		{
			Name:       "bool or",
			Constraint: m.AddBoolOr(a, b.Not()),
			Expected:   "at least one of a, !b holds",
		},
		{
			Name:       "bool and",
			Constraint: m.AddBoolAnd(a, b),
			Expected:   "all of a, b hold",
		},
		{
			Name:       "exactly one",
			Constraint: m.AddExactlyOne(a, b),
			Expected:   "exactly one of a, b holds",
		},
		{
			Name:       "equality",
			Constraint: m.AddEquality(v, 3),
			Expected:   "v = 3",
		},
		{
			Name:       "gated equality",
			Constraint: m.AddEquality(v, 3).OnlyEnforceIf(a),
			Expected:   "v = 3 when a",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Constraint.String())
		})
	}
	assert.NoError(t, m.Err())
}

func TestConstraintsIncludeDomains(t *testing.T) {
	m := tabular.NewModel()
	v := m.NewIntVar(1, 2, "v")
	m.AddEquality(v, 1)

	constraints := m.Constraints()
	assert.Len(t, constraints, 2)
	assert.Equal(t, "v takes exactly one value in [1,2]", constraints[0].String())
}
