package tabular

import (
	"fmt"
	"strings"
)

// BoolVar is an opaque handle to a boolean decision variable, or to the
// negation of one. The zero value is not a valid variable.
type BoolVar struct {
	model   *Model
	index   int
	negated bool
}

// Not returns the negation of b.
func (b BoolVar) Not() BoolVar {
	return BoolVar{model: b.model, index: b.index, negated: !b.negated}
}

// Index returns the position of the underlying variable in its model's
// declaration order.
func (b BoolVar) Index() int {
	return b.index
}

// IsNegated reports whether b refers to the negation of its underlying
// variable.
func (b BoolVar) IsNegated() bool {
	return b.negated
}

// Model returns the model that owns b, or nil for the zero value.
func (b BoolVar) Model() *Model {
	return b.model
}

// Name returns the name of the underlying variable.
func (b BoolVar) Name() string {
	if b.model == nil {
		return ""
	}
	return b.model.bools[b.index].name
}

func (b BoolVar) String() string {
	if b.negated {
		return "!" + b.Name()
	}
	return b.Name()
}

// IntVar is an opaque handle to a bounded integer decision variable. The
// zero value is not a valid variable.
type IntVar struct {
	model *Model
	index int
}

// Index returns the position of the variable in its model's declaration
// order.
func (v IntVar) Index() int {
	return v.index
}

// Model returns the model that owns v, or nil for the zero value.
func (v IntVar) Model() *Model {
	return v.model
}

// Name returns the name of the variable.
func (v IntVar) Name() string {
	if v.model == nil {
		return ""
	}
	return v.model.ints[v.index].name
}

// Domain returns the inclusive bounds declared for the variable.
func (v IntVar) Domain() (lb, ub int) {
	d := v.model.ints[v.index]
	return d.lb, d.ub
}

func (v IntVar) String() string {
	return v.Name()
}

// Term is a single coefficient-variable product in a LinearExpr.
type Term struct {
	Var   IntVar
	Coeff int
}

// LinearExpr is a weighted sum of integer variables.
type LinearExpr struct {
	terms []Term
}

// Sum returns the expression summing the given variables with unit
// coefficients.
func Sum(vars ...IntVar) LinearExpr {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{Var: v, Coeff: 1}
	}
	return LinearExpr{terms: terms}
}

// AddTerm returns a copy of e extended with coeff*v.
func (e LinearExpr) AddTerm(v IntVar, coeff int) LinearExpr {
	terms := make([]Term, len(e.terms), len(e.terms)+1)
	copy(terms, e.terms)
	return LinearExpr{terms: append(terms, Term{Var: v, Coeff: coeff})}
}

// Terms returns the terms of the expression.
func (e LinearExpr) Terms() []Term {
	return e.terms
}

func (e LinearExpr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	s := make([]string, len(e.terms))
	for i, t := range e.terms {
		if t.Coeff == 1 {
			s[i] = t.Var.Name()
		} else {
			s[i] = fmt.Sprintf("%d*%s", t.Coeff, t.Var.Name())
		}
	}
	return strings.Join(s, " + ")
}
