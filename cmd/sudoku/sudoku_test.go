package sudoku

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constraint-framework/tabular/pkg/tabular"
	"github.com/constraint-framework/tabular/pkg/tabular/solver"
)

func TestSolvedBoardIsValid(t *testing.T) {
	m := tabular.NewModel()
	board := NewBoard(m)

	s, err := solver.NewSolver(solver.WithModel(m))
	require.NoError(t, err)
	solution, err := s.Solve(context.Background())
	require.NoError(t, err)

	digits := func(cells [][2]int) map[int]struct{} {
		seen := map[int]struct{}{}
		for _, rc := range cells {
			seen[board.Digit(solution.BooleanValue, rc[0], rc[1])] = struct{}{}
		}
		return seen
	}

	// every cell holds a digit
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			d := board.Digit(solution.BooleanValue, row, col)
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 9)
		}
	}

	// every row, column and box holds all nine digits
	for i := 0; i < 9; i++ {
		var row, col [][2]int
		for j := 0; j < 9; j++ {
			row = append(row, [2]int{i, j})
			col = append(col, [2]int{j, i})
		}
		assert.Len(t, digits(row), 9)
		assert.Len(t, digits(col), 9)
	}
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			var box [][2]int
			for dx := 0; dx < 3; dx++ {
				for dy := 0; dy < 3; dy++ {
					box = append(box, [2]int{x + dx, y + dy})
				}
			}
			assert.Len(t, digits(box), 9)
		}
	}
}
