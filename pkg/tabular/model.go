package tabular

import (
	"errors"
	"fmt"
)

type boolVarData struct {
	name string
}

type intVarData struct {
	name   string
	lb, ub int
}

// Model accumulates variable declarations, constraints and an optional
// objective. It is a plain builder: nothing is checked against a solver
// until the solver subpackage compiles it. A Model must not be shared
// between goroutines while it is being built.
type Model struct {
	bools       []boolVarData
	ints        []intVarData
	constraints []*Constraint
	objective   LinearExpr
	minimize    bool
	errs        []error
}

func NewModel() *Model {
	return &Model{}
}

// NewBoolVar declares a boolean decision variable. If name is empty a
// deterministic name derived from the declaration index is assigned.
func (m *Model) NewBoolVar(name string) BoolVar {
	if name == "" {
		name = fmt.Sprintf("b%d", len(m.bools))
	}
	m.bools = append(m.bools, boolVarData{name: name})
	return BoolVar{model: m, index: len(m.bools) - 1}
}

// NewIntVar declares an integer decision variable with the inclusive
// domain [lb, ub]. Domains must be nonnegative and non-empty; violations
// are recorded on the model and surfaced when it is solved. If name is
// empty a deterministic name derived from the declaration index is
// assigned.
func (m *Model) NewIntVar(lb, ub int, name string) IntVar {
	if name == "" {
		name = fmt.Sprintf("x%d", len(m.ints))
	}
	if lb < 0 || lb > ub {
		m.errs = append(m.errs, fmt.Errorf("invalid domain [%d,%d] for %q", lb, ub, name))
	}
	m.ints = append(m.ints, intVarData{name: name, lb: lb, ub: ub})
	v := IntVar{model: m, index: len(m.ints) - 1}
	m.constraints = append(m.constraints, &Constraint{kind: kindDomain, subject: v})
	return v
}

// AddBoolOr adds the constraint that at least one of the given literals
// holds.
func (m *Model) AddBoolOr(literals ...BoolVar) *Constraint {
	return m.add(&Constraint{kind: kindBoolOr, literals: literals})
}

// AddBoolAnd adds the constraint that every one of the given literals
// holds.
func (m *Model) AddBoolAnd(literals ...BoolVar) *Constraint {
	return m.add(&Constraint{kind: kindBoolAnd, literals: literals})
}

// AddExactlyOne adds the constraint that exactly one of the given literals
// holds.
func (m *Model) AddExactlyOne(literals ...BoolVar) *Constraint {
	return m.add(&Constraint{kind: kindExactlyOne, literals: literals})
}

// AddEquality adds the constraint v == value. A value outside v's declared
// domain makes the constraint unsatisfiable rather than invalid, so it can
// be gated behind an enforcement literal.
func (m *Model) AddEquality(v IntVar, value int) *Constraint {
	if v.Model() != m {
		m.errs = append(m.errs, fmt.Errorf("integer variable %q does not belong to this model", v.Name()))
	}
	return m.add(&Constraint{kind: kindEquality, subject: v, value: value})
}

// Minimize sets the objective to the minimization of expr. Only the last
// call takes effect.
func (m *Model) Minimize(expr LinearExpr) {
	for _, t := range expr.Terms() {
		if t.Var.Model() != m {
			m.errs = append(m.errs, fmt.Errorf("objective variable %q does not belong to this model", t.Var.Name()))
		}
	}
	m.objective = expr
	m.minimize = true
}

func (m *Model) add(c *Constraint) *Constraint {
	if len(c.literals) == 0 && c.kind != kindEquality && c.kind != kindDomain {
		m.errs = append(m.errs, fmt.Errorf("%s constraint requires at least one literal", c.kind))
	}
	for _, l := range c.literals {
		if l.Model() != m {
			m.errs = append(m.errs, fmt.Errorf("literal %q does not belong to this model", l.Name()))
		}
	}
	c.model = m
	m.constraints = append(m.constraints, c)
	return c
}

// NumBoolVars returns the number of boolean variables declared so far.
func (m *Model) NumBoolVars() int {
	return len(m.bools)
}

// BoolVars returns handles for every boolean variable in declaration
// order.
func (m *Model) BoolVars() []BoolVar {
	vars := make([]BoolVar, len(m.bools))
	for i := range m.bools {
		vars[i] = BoolVar{model: m, index: i}
	}
	return vars
}

// IntVars returns handles for every integer variable in declaration order.
func (m *Model) IntVars() []IntVar {
	vars := make([]IntVar, len(m.ints))
	for i := range m.ints {
		vars[i] = IntVar{model: m, index: i}
	}
	return vars
}

// Constraints returns every constraint added to the model, including the
// implicit domain constraints of its integer variables, in insertion
// order.
func (m *Model) Constraints() []*Constraint {
	return m.constraints
}

// Objective returns the minimization objective, if one was set.
func (m *Model) Objective() (LinearExpr, bool) {
	return m.objective, m.minimize
}

// Err returns the accumulated declaration errors, or nil if the model is
// well formed.
func (m *Model) Err() error {
	return errors.Join(m.errs...)
}
