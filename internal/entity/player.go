package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Mark is the content of a board cell and the symbol of a player.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Symbol is the single-character form used by boards printed on the terminal.
func (that Mark) Symbol() string {
	if that == EmptyCell {
		return "_"
	}
	return string(that)
}

func ParseMark(value string) (Mark, error) {
	switch mark := Mark(strings.ToUpper(strings.TrimSpace(value))); mark {
	case PlayerX, PlayerO:
		return mark, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}
