package solver

import "github.com/constraint-framework/tabular/pkg/tabular"

// Status describes how a solution was obtained.
type Status int

const (
	StatusUnknown Status = iota
	// StatusFeasible means the solution satisfies every constraint; no
	// objective was set.
	StatusFeasible
	// StatusOptimal means the solution satisfies every constraint and
	// minimizes the model's objective.
	StatusOptimal
)

func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "FEASIBLE"
	case StatusOptimal:
		return "OPTIMAL"
	}
	return "UNKNOWN"
}

// Solution is a satisfying assignment for every variable of a model.
type Solution struct {
	status    Status
	bools     []bool
	ints      []int
	objective int
}

func (s *Solution) Status() Status {
	return s.status
}

// Value returns the value assigned to the given integer variable.
func (s *Solution) Value(v tabular.IntVar) int {
	return s.ints[v.Index()]
}

// BooleanValue returns the value assigned to the given boolean literal,
// accounting for negation.
func (s *Solution) BooleanValue(b tabular.BoolVar) bool {
	value := s.bools[b.Index()]
	if b.IsNegated() {
		return !value
	}
	return value
}

// ObjectiveValue returns the value of the model's objective expression
// under this solution, or 0 if the model has no objective.
func (s *Solution) ObjectiveValue() int {
	return s.objective
}
