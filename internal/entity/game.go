package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const BoardSize = 9

type Mode string

const (
	ModeHumanVsHuman   Mode = "user"
	ModeVsComputerHard Mode = "cpu"
	ModeVsComputerEasy Mode = "cpueasy"
)

type Screen string

const (
	ScreenStart   Screen = "start"
	ScreenPlaying Screen = "game"
)

type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeWinnerX Outcome = "x"
	OutcomeWinnerO Outcome = "o"
	OutcomeTie     Outcome = "tie"
)

// Board is a 3x3 grid stored row-major: cell 3*row + col.
type Board [BoardSize]Mark

// Tally counts rounds won by each mark. Ties are not counted.
type Tally struct {
	X int `json:"x"`
	O int `json:"o"`
}

// Session is the whole mutable state of one game session.
type Session struct {
	ID         string  `json:"id,omitempty"`
	Board      Board   `json:"board"`
	XNext      bool    `json:"x_next"`
	Mode       Mode    `json:"mode"`
	ActiveUser Mark    `json:"active_user"`
	Outcome    Outcome `json:"outcome"`
	WinnerLine []int   `json:"winner_line,omitempty"`
	Tally      Tally   `json:"tally"`
	Screen     Screen  `json:"screen"`
}

// NewSession returns the state shown on the start screen.
func NewSession() Session {
	return Session{
		Mode:       ModeHumanVsHuman,
		ActiveUser: PlayerX,
		Screen:     ScreenStart,
	}
}

// Turn returns the mark that is placed next.
func (that Session) Turn() Mark {
	if that.XNext {
		return PlayerO
	}
	return PlayerX
}

func (that Session) IsPlaying() bool {
	return that.Screen == ScreenPlaying
}

func (that Session) IsFinished() bool {
	return that.Outcome != OutcomeNone
}

// IsComputerTurn reports whether the live round is waiting on the computer.
func (that Session) IsComputerTurn() bool {
	return that.IsPlaying() && !that.IsFinished() && that.Mode.VsComputer() && that.Turn() != that.ActiveUser
}

// Clone returns a copy that shares no memory with the receiver.
func (that Session) Clone() Session {
	clone := that
	clone.WinnerLine = slices.Clone(that.WinnerLine)
	return clone
}

func (that Mode) VsComputer() bool {
	return that == ModeVsComputerHard || that == ModeVsComputerEasy
}

func (that Mode) String() string {
	switch that {
	case ModeHumanVsHuman:
		return "1 vs 1"
	case ModeVsComputerHard:
		return "vs CPU (hard)"
	case ModeVsComputerEasy:
		return "vs CPU (easy)"
	default:
		return string(that)
	}
}

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(value)); mode {
	case ModeHumanVsHuman, ModeVsComputerHard, ModeVsComputerEasy:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMode, value)
	}
}

// OutcomeFor maps a winning mark to its outcome.
func OutcomeFor(winner Mark) Outcome {
	switch winner {
	case PlayerX:
		return OutcomeWinnerX
	case PlayerO:
		return OutcomeWinnerO
	default:
		return OutcomeNone
	}
}

// Winner returns the winning mark, or EmptyCell for none and tie.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeWinnerX:
		return PlayerX
	case OutcomeWinnerO:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that *Tally) Add(winner Mark) {
	switch winner {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

// ParseBoard reads nine cells written as X, O and one of "_", ".", "-" for empty.
// Whitespace and "|" separators are ignored.
func ParseBoard(value string) (Board, error) {
	var board Board

	cells := 0
	for _, r := range value {
		var mark Mark
		switch r {
		case ' ', '\t', '\n', '|':
			continue
		case 'x', 'X':
			mark = PlayerX
		case 'o', 'O':
			mark = PlayerO
		case '_', '.', '-':
			mark = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", apperror.ErrInvalidBoard, r)
		}

		if cells == BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidBoard, BoardSize)
		}

		board[cells] = mark
		cells++
	}

	if cells != BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, cells, BoardSize)
	}

	return board, nil
}

func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cell.Symbol())
	}
	return sb.String()
}
