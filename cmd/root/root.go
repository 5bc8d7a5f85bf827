package root

import (
	"github.com/spf13/cobra"

	"github.com/constraint-framework/tabular/cmd/dimacs"

	"github.com/constraint-framework/tabular/cmd/sudoku"

	"github.com/constraint-framework/tabular/cmd/table"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabular",
		Short: "Tabular is a CP-SAT style constraint modeling layer",
		Long: `A CP-SAT style constraint modeling layer written in Go, built around
an optional table constraint encoding.
For more information visit https://github.com/constraint-framework/tabular`,
	}

	// add sub-commands
	rootCmd.AddCommand(table.NewTableCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())
	rootCmd.AddCommand(dimacs.NewDimacsCommand())

	return rootCmd
}
