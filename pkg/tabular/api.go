// Package tabular provides a small CP-SAT style model builder: boolean and
// bounded nonnegative integer decision variables, primitive constraints with
// optional enforcement literals, and a linear minimization objective. Models
// are solved by the solver subpackage, which compiles them to SAT.
package tabular

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// NotSatisfiable is an error composed of a minimal set of applied
// constraints that is sufficient to make a solution impossible.
type NotSatisfiable []*Constraint

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", msg, strings.Join(s, ", "))
}

// LitMapping performs translation between model entities and the literals
// that appear in the SAT formula. It is implemented by the solver
// subpackage.
type LitMapping interface {
	// LitOf returns the literal standing for the given boolean variable,
	// negated if b is a negation.
	LitOf(b BoolVar) z.Lit
	// ValueLitOf returns the literal standing for "v == value", or the
	// constant false literal if value lies outside v's declared domain.
	ValueLitOf(v IntVar, value int) z.Lit
	LogicCircuit() *logic.C
}
