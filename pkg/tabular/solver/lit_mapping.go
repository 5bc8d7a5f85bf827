package solver

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/constraint-framework/tabular/pkg/tabular"
)

type DuplicateName string

func (e DuplicateName) Error() string {
	return fmt.Sprintf("duplicate variable name %q in model", string(e))
}

type inconsistentLitMapping []error

func (inconsistentLitMapping) Error() string {
	return "internal solver failure"
}

// litMapping performs translation between a tabular.Model and the literals
// that appear in the SAT formula. Boolean variables map to a single
// literal; integer variables map to one literal per domain value, tied
// together by the model's implicit domain constraints.
type litMapping struct {
	model     *tabular.Model
	inorder   []*tabular.Constraint
	boolLits  []z.Lit
	valueLits [][]z.Lit
	gates     map[z.Lit]*tabular.Constraint
	c         *logic.C
	errs      inconsistentLitMapping
}

// newLitMapping compiles the given model into a fresh logic circuit. Every
// constraint becomes a single gate literal; assuming all gate literals
// makes the model's constraints hold.
func newLitMapping(m *tabular.Model) (*litMapping, error) {
	if err := m.Err(); err != nil {
		return nil, err
	}
	if err := checkNames(m); err != nil {
		return nil, err
	}

	d := &litMapping{
		model: m,
		gates: map[z.Lit]*tabular.Constraint{},
		c:     logic.NewC(),
	}

	for range m.BoolVars() {
		d.boolLits = append(d.boolLits, d.c.Lit())
	}
	for _, v := range m.IntVars() {
		lb, ub := v.Domain()
		lits := make([]z.Lit, ub-lb+1)
		for i := range lits {
			lits[i] = d.c.Lit()
		}
		d.valueLits = append(d.valueLits, lits)
	}

	for _, constraint := range m.Constraints() {
		g := constraint.Apply(d)
		if g == z.LitNull {
			continue
		}
		d.gates[g] = constraint
		d.inorder = append(d.inorder, constraint)
	}

	return d, nil
}

func checkNames(m *tabular.Model) error {
	seen := make(map[string]struct{}, m.NumBoolVars()+len(m.IntVars()))
	for _, b := range m.BoolVars() {
		if _, ok := seen[b.Name()]; ok {
			return DuplicateName(b.Name())
		}
		seen[b.Name()] = struct{}{}
	}
	for _, v := range m.IntVars() {
		if _, ok := seen[v.Name()]; ok {
			return DuplicateName(v.Name())
		}
		seen[v.Name()] = struct{}{}
	}
	return nil
}

// LitOf returns the literal corresponding to the given boolean variable.
func (d *litMapping) LitOf(b tabular.BoolVar) z.Lit {
	m := d.boolLits[b.Index()]
	if b.IsNegated() {
		return m.Not()
	}
	return m
}

// ValueLitOf returns the literal corresponding to "v == value", or the
// constant false literal when value lies outside v's domain.
func (d *litMapping) ValueLitOf(v tabular.IntVar, value int) z.Lit {
	lb, ub := v.Domain()
	if value < lb || value > ub {
		return d.c.F
	}
	return d.valueLits[v.Index()][value-lb]
}

func (d *litMapping) LogicCircuit() *logic.C {
	return d.c
}

// Error returns a single error value that is an aggregation of all errors
// encountered during a litMapping's lifetime, or nil if there have been
// none. A non-nil return value likely indicates a bug in the solver.
func (d *litMapping) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	s := make([]string, len(d.errs))
	for i, err := range d.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}

// AddConstraints teaches the current contents of the embedded circuit to
// the solver g.
func (d *litMapping) AddConstraints(g inter.S) {
	d.c.ToCnf(g)
}

// AssumeConstraints assumes every constraint gate literal, including the
// implicit integer domain constraints.
func (d *litMapping) AssumeConstraints(s inter.S) {
	for m := range d.gates {
		s.Assume(m)
	}
}

// CardinalityConstrainer constructs a sorting network to provide
// cardinality constraints over the provided slice of literals. Any new
// clauses and variables are translated to CNF and taught to the given
// inter.Adder.
func (d *litMapping) CardinalityConstrainer(g inter.Adder, ms []z.Lit) *logic.CardSort {
	clen := d.c.Len()
	cs := d.c.CardSort(ms)
	marks := make([]int8, clen, d.c.Len())
	for i := range marks {
		marks[i] = 1
	}
	for w := 0; w <= cs.N(); w++ {
		marks, _ = d.c.CnfSince(g, marks, cs.Leq(w))
	}
	return cs
}

// ObjectiveLits flattens the model's objective into a multiset of one-hot
// value literals: the literal for "v == value" appears coeff*value times,
// so that the number of true literals in the multiset equals the objective
// value. Only nonnegative coefficients are supported.
func (d *litMapping) ObjectiveLits() ([]z.Lit, error) {
	expr, ok := d.model.Objective()
	if !ok {
		return nil, nil
	}
	var ms []z.Lit
	for _, t := range expr.Terms() {
		if t.Coeff < 0 {
			return nil, fmt.Errorf("objective term %d*%s has a negative coefficient", t.Coeff, t.Var.Name())
		}
		lb, ub := t.Var.Domain()
		for value := lb; value <= ub; value++ {
			m := d.ValueLitOf(t.Var, value)
			for rep := 0; rep < t.Coeff*value; rep++ {
				ms = append(ms, m)
			}
		}
	}
	return ms, nil
}

// Conflicts maps the solver's failed assumptions back to the constraints
// they stand for.
func (d *litMapping) Conflicts(g inter.Assumable) []*tabular.Constraint {
	whys := g.Why(nil)
	as := make([]*tabular.Constraint, 0, len(whys))
	for _, why := range whys {
		if c, ok := d.gates[why]; ok {
			as = append(as, c)
		}
	}
	return as
}

// BoolValues reads the value of every boolean variable out of a satisfied
// solver.
func (d *litMapping) BoolValues(g inter.S) []bool {
	values := make([]bool, len(d.boolLits))
	for i, m := range d.boolLits {
		values[i] = g.Value(m)
	}
	return values
}

// IntValues reads the value of every integer variable out of a satisfied
// solver. A variable with no true value literal, or more than one,
// indicates an internal error and is recorded on the mapping.
func (d *litMapping) IntValues(g inter.S) []int {
	values := make([]int, len(d.valueLits))
	for i, v := range d.model.IntVars() {
		lb, _ := v.Domain()
		found := false
		for offset, m := range d.valueLits[i] {
			if !g.Value(m) {
				continue
			}
			if found {
				d.errs = append(d.errs, fmt.Errorf("multiple values assigned to %s", v.Name()))
				break
			}
			values[i] = lb + offset
			found = true
		}
		if !found {
			d.errs = append(d.errs, fmt.Errorf("no value assigned to %s", v.Name()))
		}
	}
	return values
}
