package tabular

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/z"
)

type constraintKind int

const (
	kindBoolOr constraintKind = iota
	kindBoolAnd
	kindExactlyOne
	kindEquality
	kindDomain
)

func (k constraintKind) String() string {
	switch k {
	case kindBoolOr:
		return "bool-or"
	case kindBoolAnd:
		return "bool-and"
	case kindExactlyOne:
		return "exactly-one"
	case kindEquality:
		return "equality"
	case kindDomain:
		return "domain"
	}
	return "unknown"
}

// Constraint is a single primitive constraint recorded on a Model. Every
// constraint may be gated behind enforcement literals: it is then only
// required to hold when all of its enforcement literals are true.
type Constraint struct {
	kind        constraintKind
	literals    []BoolVar
	subject     IntVar
	value       int
	enforcement []BoolVar
	model       *Model
}

// OnlyEnforceIf gates the constraint behind the given literals. Multiple
// calls accumulate; all enforcement literals must be true for the
// constraint to be enforced.
func (c *Constraint) OnlyEnforceIf(literals ...BoolVar) *Constraint {
	for _, l := range literals {
		if c.model != nil && l.Model() != c.model {
			c.model.errs = append(c.model.errs, fmt.Errorf("enforcement literal %q does not belong to this model", l.Name()))
		}
	}
	c.enforcement = append(c.enforcement, literals...)
	return c
}

// Apply compiles the constraint to a single gate literal in the mapping's
// logic circuit. Assuming the returned literal makes the (gated)
// constraint hold.
func (c *Constraint) Apply(lm LitMapping) z.Lit {
	cc := lm.LogicCircuit()

	var m z.Lit
	switch c.kind {
	case kindBoolOr:
		m = cc.Ors(c.lits(lm)...)
	case kindBoolAnd:
		m = cc.Ands(c.lits(lm)...)
	case kindExactlyOne:
		cs := cc.CardSort(c.lits(lm))
		m = cc.And(cs.Leq(1), cs.Geq(1))
	case kindEquality:
		m = lm.ValueLitOf(c.subject, c.value)
	case kindDomain:
		lb, ub := c.subject.Domain()
		ms := make([]z.Lit, 0, ub-lb+1)
		for value := lb; value <= ub; value++ {
			ms = append(ms, lm.ValueLitOf(c.subject, value))
		}
		cs := cc.CardSort(ms)
		m = cc.And(cs.Leq(1), cs.Geq(1))
	}

	for _, e := range c.enforcement {
		m = cc.Or(lm.LitOf(e).Not(), m)
	}
	return m
}

func (c *Constraint) lits(lm LitMapping) []z.Lit {
	ms := make([]z.Lit, len(c.literals))
	for i, l := range c.literals {
		ms[i] = lm.LitOf(l)
	}
	return ms
}

func (c *Constraint) String() string {
	var s string
	switch c.kind {
	case kindBoolOr:
		s = fmt.Sprintf("at least one of %s holds", literalNames(c.literals))
	case kindBoolAnd:
		s = fmt.Sprintf("all of %s hold", literalNames(c.literals))
	case kindExactlyOne:
		s = fmt.Sprintf("exactly one of %s holds", literalNames(c.literals))
	case kindEquality:
		s = fmt.Sprintf("%s = %d", c.subject.Name(), c.value)
	case kindDomain:
		lb, ub := c.subject.Domain()
		s = fmt.Sprintf("%s takes exactly one value in [%d,%d]", c.subject.Name(), lb, ub)
	}
	if len(c.enforcement) > 0 {
		s = fmt.Sprintf("%s when %s", s, literalNames(c.enforcement))
	}
	return s
}

func literalNames(literals []BoolVar) string {
	s := make([]string, len(literals))
	for i, l := range literals {
		s[i] = l.String()
	}
	return strings.Join(s, ", ")
}
