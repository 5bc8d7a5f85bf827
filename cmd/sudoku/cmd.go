package sudoku

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/tabular/pkg/tabular"
	"github.com/constraint-framework/tabular/pkg/tabular/solver"
)

func NewSudokuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku",
		Short: "Returns a solved sudoku board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve()
		},
	}
}

func solve() error {
	m := tabular.NewModel()
	board := NewBoard(m)

	so, err := solver.NewSolver(solver.WithModel(m))
	if err != nil {
		return err
	}

	solution, err := so.Solve(context.Background())
	if err != nil {
		fmt.Println("no solution found")
		return nil
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			fmt.Printf("%d", board.Digit(solution.BooleanValue, row, col))
			if col != 8 {
				fmt.Printf(" ")
			}
		}
		fmt.Printf("\n")
	}

	return nil
}
