package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// Heuristic is the easy opponent: it takes a win that is one move away and
// otherwise plays a random empty cell. It never blocks.
type Heuristic struct {
	rng *rand.Rand
}

func NewHeuristic(rng *rand.Rand) *Heuristic {
	return &Heuristic{rng: rng}
}

func (that *Heuristic) ChooseMove(board entity.Board, mark entity.Mark) int {
	availableCells := tictactoe.EmptyCells(board)
	if len(availableCells) == 0 {
		return NoMove
	}

	if cell, ok := findWinningMove(board, mark); ok {
		return cell
	}

	return availableCells[that.rng.IntN(len(availableCells))]
}

// findWinningMove returns the empty cell that completes a line for mark,
// looking at lines in WinCombos order.
func findWinningMove(board entity.Board, mark entity.Mark) (int, bool) {
	for _, combo := range tictactoe.WinCombos {
		owned, empty := 0, NoMove
		for _, cell := range combo {
			switch board[cell] {
			case mark:
				owned++
			case entity.EmptyCell:
				empty = cell
			}
		}

		if owned == 2 && empty != NoMove {
			return empty, true
		}
	}

	return NoMove, false
}
