// Package bot holds the computer opponents.
package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// NoMove is returned when the board leaves nothing to play.
const NoMove = -1

//go:generate mockgen -source=selector.go -destination=../../mocks/bot/mock_selector.go -package=bot

// Selector picks the next cell for mark on board.
type Selector interface {
	ChooseMove(board entity.Board, mark entity.Mark) int
}

// SelectorFunc adapts a plain function to Selector.
type SelectorFunc func(board entity.Board, mark entity.Mark) int

func (that SelectorFunc) ChooseMove(board entity.Board, mark entity.Mark) int {
	return that(board, mark)
}

// Factory builds the opponent for a session once its mode and the human's
// mark are known. It returns nil for human vs human.
type Factory func(mode entity.Mode, humanMark entity.Mark) Selector

// NewFactory returns the default Factory. rng feeds the easy opponent.
func NewFactory(rng *rand.Rand) Factory {
	return func(mode entity.Mode, humanMark entity.Mark) Selector {
		switch mode {
		case entity.ModeVsComputerHard:
			return NewExhaustive(humanMark)
		case entity.ModeVsComputerEasy:
			return NewHeuristic(rng)
		default:
			return nil
		}
	}
}
