package table

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/tabular/pkg/tabular"
	"github.com/constraint-framework/tabular/pkg/tabular/solver"
	opttable "github.com/constraint-framework/tabular/pkg/tabular/table"
)

func NewTableCommand() *cobra.Command {
	var option bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Solves a demo model with an optional table constraint",
		Long: `Builds a model with five integer variables in [0,10], an optional
table constraint restricting them to (0,1,2,3,4) or (5,6,7,8,9), and
minimizes their sum. With --option=false the table constraint is
deactivated and the minimum is 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(option)
		},
	}
	cmd.Flags().BoolVar(&option, "option", true, "activate the table constraint")
	return cmd
}

func solve(activate bool) error {
	m := tabular.NewModel()

	variables := make([]tabular.IntVar, 5)
	for i := range variables {
		variables[i] = m.NewIntVar(0, 10, fmt.Sprintf("v[%d]", i))
	}

	tuples := [][]int{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
	}

	option := m.NewBoolVar("option")

	if err := opttable.AddAllowedAssignmentsIf(m, variables, tuples, option); err != nil {
		return err
	}

	// activate or deactivate the table constraint
	if activate {
		m.AddBoolAnd(option)
	} else {
		m.AddBoolAnd(option.Not())
	}

	m.Minimize(tabular.Sum(variables...))

	so, err := solver.NewSolver(solver.WithModel(m))
	if err != nil {
		return err
	}

	solution, err := so.Solve(context.Background())
	if err != nil {
		fmt.Printf("no solution found: %s\n", err)
		return nil
	}

	fmt.Printf("Status: %s\n", solution.Status())
	fmt.Printf("Objective value: %d\n", solution.ObjectiveValue())
	fmt.Print("Variable values: ")
	for _, v := range variables {
		fmt.Printf("%d ", solution.Value(v))
	}
	fmt.Println()

	return nil
}
