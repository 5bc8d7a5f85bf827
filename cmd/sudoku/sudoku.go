package sudoku

import (
	"fmt"

	"github.com/constraint-framework/tabular/pkg/tabular"
)

// Board holds the per-cell-per-digit indicator booleans of a 9x9 sudoku
// model: cell[row][col][n] is true when the cell at row,col holds digit
// n+1.
type Board struct {
	cells [9][9][9]tabular.BoolVar
}

// NewBoard declares the indicator booleans and the sudoku constraints on
// m: every cell holds exactly one digit, and every row, column and box
// contains every digit exactly once.
func NewBoard(m *tabular.Model) *Board {
	b := &Board{}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				b.cells[row][col][n] = m.NewBoolVar(fmt.Sprintf("cell[%d][%d]=%d", row, col, n+1))
			}
		}
	}

	// every cell holds exactly one digit
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			m.AddExactlyOne(b.cells[row][col][:]...)
		}
	}

	// every row contains every digit exactly once
	for row := 0; row < 9; row++ {
		for n := 0; n < 9; n++ {
			literals := make([]tabular.BoolVar, 9)
			for col := 0; col < 9; col++ {
				literals[col] = b.cells[row][col][n]
			}
			m.AddExactlyOne(literals...)
		}
	}

	// every column contains every digit exactly once
	for col := 0; col < 9; col++ {
		for n := 0; n < 9; n++ {
			literals := make([]tabular.BoolVar, 9)
			for row := 0; row < 9; row++ {
				literals[row] = b.cells[row][col][n]
			}
			m.AddExactlyOne(literals...)
		}
	}

	// every box contains every digit exactly once
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			for n := 0; n < 9; n++ {
				var literals []tabular.BoolVar
				for dx := 0; dx < 3; dx++ {
					for dy := 0; dy < 3; dy++ {
						literals = append(literals, b.cells[x+dx][y+dy][n])
					}
				}
				m.AddExactlyOne(literals...)
			}
		}
	}

	return b
}

// Digit returns the digit placed at row,col under the given valuation, or
// 0 if none is set.
func (b *Board) Digit(value func(tabular.BoolVar) bool, row, col int) int {
	for n := 0; n < 9; n++ {
		if value(b.cells[row][col][n]) {
			return n + 1
		}
	}
	return 0
}
