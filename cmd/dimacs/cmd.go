package dimacs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/tabular/pkg/tabular"
	"github.com/constraint-framework/tabular/pkg/tabular/solver"
)

func NewDimacsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variable> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0])
		},
	}
}

// BuildModel turns a parsed dimacs problem into a model with one boolean
// variable per dimacs variable and one bool-or constraint per clause.
func BuildModel(d *Dimacs) (*tabular.Model, []tabular.BoolVar) {
	m := tabular.NewModel()
	variables := make([]tabular.BoolVar, d.NumVariables())
	for i := range variables {
		variables[i] = m.NewBoolVar(strconv.Itoa(i + 1))
	}
	for _, clause := range d.Clauses() {
		literals := make([]tabular.BoolVar, len(clause))
		for i, lit := range clause {
			if lit < 0 {
				literals[i] = variables[-lit-1].Not()
			} else {
				literals[i] = variables[lit-1]
			}
		}
		m.AddBoolOr(literals...)
	}
	return m, variables
}

func solve(path string) error {
	// open dimacs file
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	dimacs, err := NewDimacs(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	// build solver
	m, variables := BuildModel(dimacs)
	so, err := solver.NewSolver(solver.WithModel(m))
	if err != nil {
		return err
	}

	// get solution
	solution, err := so.Solve(context.Background())
	if err != nil {
		fmt.Printf("no solution found: %s\n", err)
	} else {
		fmt.Println("solution found:")
		for _, v := range variables {
			fmt.Printf("%s = %t\n", v.Name(), solution.BooleanValue(v))
		}
	}

	return nil
}
