package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// WinCombos lists every winning triple in scan order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result is what DetectOutcome found on a board.
type Result struct {
	Winner entity.Mark
	Line   [3]int
	Found  bool
}

// DetectOutcome reports the first winning triple in WinCombos order.
// It never decides a tie; callers combine a negative result with IsFull.
func DetectOutcome(board entity.Board) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return Result{Winner: a, Line: combo, Found: true}
		}
	}

	return Result{}
}

// EmptyCells returns the indexes of empty cells in ascending order.
func EmptyCells(board entity.Board) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func IsFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// IsTerminal reports whether no more moves can be played on the board.
func IsTerminal(board entity.Board) bool {
	return DetectOutcome(board).Found || IsFull(board)
}

// IsValidCell reports whether cell is a board index.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < entity.BoardSize
}
