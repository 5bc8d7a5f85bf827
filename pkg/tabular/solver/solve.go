package solver

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"

	"github.com/constraint-framework/tabular/pkg/tabular"
)

type Solver interface {
	Solve(context.Context) (*Solution, error)
}

type solver struct {
	g      inter.S
	litMap *litMapping
	tracer Tracer
}

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Solve searches for an assignment satisfying every constraint of the
// model, minimizing the model's objective if one was set. If no solution
// is possible a tabular.NotSatisfiable error is returned naming a set of
// conflicting constraints.
func (s *solver) Solve(_ context.Context) (*Solution, error) {
	result, err := s.solve()

	// This likely indicates a bug, so discard whatever
	// return values were produced.
	if derr := s.litMap.Error(); derr != nil {
		return nil, derr
	}

	return result, err
}

func (s *solver) solve() (*Solution, error) {
	// teach all constraints to the solver
	s.litMap.AddConstraints(s.g)

	// assume that all constraints hold, inside a test scope so the
	// assumptions survive repeated calls to Solve
	s.litMap.AssumeConstraints(s.g)
	s.g.Test(nil)

	switch s.g.Solve() {
	case satisfiable:
		_, minimize := s.litMap.model.Objective()
		if !minimize {
			return s.solution(StatusFeasible), nil
		}
		ms, err := s.litMap.ObjectiveLits()
		if err != nil {
			return nil, err
		}
		if len(ms) == 0 {
			// the objective is constantly zero
			return s.solution(StatusOptimal), nil
		}
		// pop the test scope before teaching the sorting network its
		// clauses, then walk the objective bound upward until the
		// model becomes satisfiable again
		s.g.Untest()
		cs := s.litMap.CardinalityConstrainer(s.g, ms)
		s.litMap.AssumeConstraints(s.g)
		s.g.Test(nil)
		for w := 0; w <= cs.N(); w++ {
			s.g.Assume(cs.Leq(w))
			sat := s.g.Solve() == satisfiable
			s.tracer.Trace(boundProbe{bound: w, sat: sat})
			if sat {
				return s.solution(StatusOptimal), nil
			}
		}
		// Something is wrong if we can't find a model anymore
		// after bounding the objective.
		return nil, fmt.Errorf("unexpected internal error")
	case unsatisfiable:
		return nil, tabular.NotSatisfiable(s.litMap.Conflicts(s.g))
	}

	return nil, fmt.Errorf("unknown outcome")
}

func (s *solver) solution(status Status) *Solution {
	sol := &Solution{
		status: status,
		bools:  s.litMap.BoolValues(s.g),
		ints:   s.litMap.IntValues(s.g),
	}
	if expr, ok := s.litMap.model.Objective(); ok {
		for _, t := range expr.Terms() {
			sol.objective += t.Coeff * sol.ints[t.Var.Index()]
		}
	}
	return sol
}

func NewSolver(options ...Option) (Solver, error) {
	s := solver{g: gini.New()}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

func WithModel(m *tabular.Model) Option {
	return func(s *solver) error {
		var err error
		s.litMap, err = newLitMapping(m)
		return err
	}
}

func WithTracer(t Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.litMap == nil {
			var err error
			s.litMap, err = newLitMapping(tabular.NewModel())
			return err
		}
		return nil
	},
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
