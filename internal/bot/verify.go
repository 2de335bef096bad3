package bot

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// Report summarizes every game played by Verify.
type Report struct {
	Computer  entity.Mark
	Reference entity.Mark
	Games     int
	Wins      int
	Ties      int
	Losses    int
	// LostGames holds the final board of every game the computer lost.
	LostGames []entity.Board
}

// Verify plays the hard opponent as computer against every possible sequence
// of human replies, X moving first, scoring boards for reference. A session
// uses the human's mark as reference; passing computer makes the opponent the
// maximizing side.
func Verify(computer, reference entity.Mark) Report {
	report := Report{Computer: computer, Reference: reference}
	selector := NewExhaustive(reference)

	var play func(board entity.Board, mover entity.Mark)
	play = func(board entity.Board, mover entity.Mark) {
		if result := tictactoe.DetectOutcome(board); result.Found {
			report.Games++
			if result.Winner == computer {
				report.Wins++
			} else {
				report.Losses++
				report.LostGames = append(report.LostGames, board)
			}
			return
		}

		if tictactoe.IsFull(board) {
			report.Games++
			report.Ties++
			return
		}

		if mover == computer {
			next := board
			next[selector.ChooseMove(board, mover)] = mover
			play(next, mover.Opponent())
			return
		}

		for _, cell := range tictactoe.EmptyCells(board) {
			next := board
			next[cell] = mover
			play(next, mover.Opponent())
		}
	}

	play(entity.Board{}, entity.PlayerX)

	return report
}
