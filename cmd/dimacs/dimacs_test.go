package dimacs_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/constraint-framework/tabular/cmd/dimacs"
	"github.com/constraint-framework/tabular/pkg/tabular"
	"github.com/constraint-framework/tabular/pkg/tabular/solver"
)

func TestDimacs(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dimacs Suite")
}

var _ = Describe("Dimacs", func() {
	It("should fail if there is no header", func() {
		problem := "1 2 3 0\n"
		_, err := dimacs.NewDimacs(bytes.NewReader([]byte(problem)))
		Expect(err).To(HaveOccurred())
	})
	It("should fail if there are no clauses", func() {
		problem := "p cnf 3 3\n"
		_, err := dimacs.NewDimacs(bytes.NewReader([]byte(problem)))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on literals outside the declared range", func() {
		problem := "p cnf 2 1\n1 3 0\n"
		_, err := dimacs.NewDimacs(bytes.NewReader([]byte(problem)))
		Expect(err).To(HaveOccurred())
	})
	It("should parse valid dimacs", func() {
		problem := "p cnf 3 1\n1 -2 3 0\n"
		d, err := dimacs.NewDimacs(bytes.NewReader([]byte(problem)))
		Expect(err).ToNot(HaveOccurred())
		Expect(d.NumVariables()).To(Equal(3))
		Expect(d.Clauses()).To(Equal([][]int{{1, -2, 3}}))
	})
})

var _ = Describe("Dimacs Model", func() {
	It("should create one variable per dimacs variable and one constraint per clause", func() {
		problem := "p cnf 3 2\n1 2 3 0\n-1 -2 0\n"
		d, err := dimacs.NewDimacs(bytes.NewReader([]byte(problem)))
		Expect(err).ToNot(HaveOccurred())

		m, variables := dimacs.BuildModel(d)
		Expect(variables).To(HaveLen(3))
		Expect(m.NumBoolVars()).To(Equal(3))
		Expect(m.Constraints()).To(HaveLen(2))
	})
	It("should produce a satisfying assignment", func() {
		problem := "p cnf 2 3\n1 2 0\n-1 2 0\n1 -2 0\n"
		d, err := dimacs.NewDimacs(bytes.NewReader([]byte(problem)))
		Expect(err).ToNot(HaveOccurred())

		m, variables := dimacs.BuildModel(d)
		so, err := solver.NewSolver(solver.WithModel(m))
		Expect(err).ToNot(HaveOccurred())

		solution, err := so.Solve(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(solution.BooleanValue(variables[0])).To(BeTrue())
		Expect(solution.BooleanValue(variables[1])).To(BeTrue())
	})
	It("should report unsatisfiable problems", func() {
		problem := "p cnf 1 2\n1 0\n-1 0\n"
		d, err := dimacs.NewDimacs(bytes.NewReader([]byte(problem)))
		Expect(err).ToNot(HaveOccurred())

		m, _ := dimacs.BuildModel(d)
		so, err := solver.NewSolver(solver.WithModel(m))
		Expect(err).ToNot(HaveOccurred())

		_, err = so.Solve(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(errors.As(err, &tabular.NotSatisfiable{})).To(BeTrue())
	})
})
