package bot

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	winScore  = 10
	lossScore = -10
	tieScore  = 0
)

// Stats describes the last search tree walked by Exhaustive.
type Stats struct {
	Nodes        int // positions visited, root included
	MaxDepth     int // deepest ply reached below the root
	MaxBranching int // most children expanded from a single position
}

// Exhaustive is the hard opponent: a full-depth minimax without pruning.
//
// Scores are kept relative to a fixed reference mark rather than to the mover.
// The mover maximizes when it is the reference and minimizes otherwise, so a
// computer that is not the reference still plays its own best move.
type Exhaustive struct {
	reference entity.Mark
	stats     Stats
}

type scoredMove struct {
	cell  int
	score int
}

func NewExhaustive(reference entity.Mark) *Exhaustive {
	return &Exhaustive{reference: reference}
}

func (that *Exhaustive) Reference() entity.Mark {
	return that.reference
}

// Stats returns the counters of the last ChooseMove or Score call.
func (that *Exhaustive) Stats() Stats {
	return that.stats
}

// ChooseMove returns the best cell for mover, the first one in ascending
// order on equal scores, or NoMove when the board is already terminal.
func (that *Exhaustive) ChooseMove(board entity.Board, mover entity.Mark) int {
	that.stats = Stats{}
	return that.search(board, mover, 0).cell
}

// Score returns the minimax value of board with mover to play.
func (that *Exhaustive) Score(board entity.Board, mover entity.Mark) int {
	that.stats = Stats{}
	return that.search(board, mover, 0).score
}

func (that *Exhaustive) search(board entity.Board, player entity.Mark, depth int) scoredMove {
	that.stats.Nodes++
	that.stats.MaxDepth = max(that.stats.MaxDepth, depth)

	if result := tictactoe.DetectOutcome(board); result.Found {
		if result.Winner == that.reference {
			return scoredMove{cell: NoMove, score: winScore}
		}
		return scoredMove{cell: NoMove, score: lossScore}
	}

	emptyCells := tictactoe.EmptyCells(board)
	if len(emptyCells) == 0 {
		return scoredMove{cell: NoMove, score: tieScore}
	}

	that.stats.MaxBranching = max(that.stats.MaxBranching, len(emptyCells))

	maximizing := player == that.reference

	best := scoredMove{cell: NoMove}
	for _, cell := range emptyCells {
		next := board
		next[cell] = player

		score := that.search(next, player.Opponent(), depth+1).score

		switch {
		case best.cell == NoMove,
			maximizing && score > best.score,
			!maximizing && score < best.score:
			best = scoredMove{cell: cell, score: score}
		}
	}

	return best
}
