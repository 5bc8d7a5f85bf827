package e2e

import (
	"context"
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/constraint-framework/tabular/pkg/tabular"
	"github.com/constraint-framework/tabular/pkg/tabular/solver"
	"github.com/constraint-framework/tabular/pkg/tabular/table"
)

func TestE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "E2E Suite")
}

var _ = Describe("Optional table constraint", func() {
	var (
		m         *tabular.Model
		variables []tabular.IntVar
		option    tabular.BoolVar
		ctx       context.Context
	)
	tuples := [][]int{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
	}

	BeforeEach(func() {
		ctx = context.Background()

		By("building the demo model")
		m = tabular.NewModel()
		variables = make([]tabular.IntVar, 5)
		for i := range variables {
			variables[i] = m.NewIntVar(0, 10, fmt.Sprintf("v[%d]", i))
		}
		option = m.NewBoolVar("option")
		Expect(table.AddAllowedAssignmentsIf(m, variables, tuples, option)).To(Succeed())
		m.Minimize(tabular.Sum(variables...))
	})

	When("the option is fixed true", func() {
		BeforeEach(func() {
			m.AddBoolAnd(option)
		})

		It("assigns the cheapest tuple", func() {
			s, err := solver.NewSolver(solver.WithModel(m))
			Expect(err).ToNot(HaveOccurred())

			solution, err := s.Solve(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(solution.Status()).To(Equal(solver.StatusOptimal))
			Expect(solution.ObjectiveValue()).To(Equal(10))
			for i, v := range variables {
				Expect(solution.Value(v)).To(Equal(tuples[0][i]))
			}
		})

		It("reports a conflict when the variables are pinned off-table", func() {
			for _, v := range variables {
				m.AddEquality(v, 10)
			}

			s, err := solver.NewSolver(solver.WithModel(m))
			Expect(err).ToNot(HaveOccurred())

			_, err = s.Solve(ctx)
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &tabular.NotSatisfiable{})).To(BeTrue())
		})
	})

	When("the option is fixed false", func() {
		BeforeEach(func() {
			m.AddBoolAnd(option.Not())
		})

		It("leaves the variables unconstrained", func() {
			s, err := solver.NewSolver(solver.WithModel(m))
			Expect(err).ToNot(HaveOccurred())

			solution, err := s.Solve(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(solution.ObjectiveValue()).To(Equal(0))
		})

		It("still admits off-table assignments", func() {
			for _, v := range variables {
				m.AddEquality(v, 10)
			}

			s, err := solver.NewSolver(solver.WithModel(m))
			Expect(err).ToNot(HaveOccurred())

			solution, err := s.Solve(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(solution.ObjectiveValue()).To(Equal(50))
		})
	})
})
