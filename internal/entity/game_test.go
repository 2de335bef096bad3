package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

func TestNewSession(t *testing.T) {
	// Given: a fresh session
	session := NewSession()

	// Then: it sits on the start screen with X to move and nothing counted
	expected := Session{
		Mode:       ModeHumanVsHuman,
		ActiveUser: PlayerX,
		Screen:     ScreenStart,
	}
	require.Equal(t, expected, session)
	assert.Equal(t, PlayerX, session.Turn())
	assert.False(t, session.IsPlaying())
	assert.False(t, session.IsFinished())
}

func TestSession_IsComputerTurn(t *testing.T) {
	t.Run("True when the computer's mark is next in a live computer game", func(t *testing.T) {
		// Given: the human plays O and X is next
		session := Session{Screen: ScreenPlaying, Mode: ModeVsComputerHard, ActiveUser: PlayerO}

		// Then: the computer has the move
		assert.True(t, session.IsComputerTurn())
	})

	t.Run("False when the human's mark is next", func(t *testing.T) {
		session := Session{Screen: ScreenPlaying, Mode: ModeVsComputerEasy, ActiveUser: PlayerX}

		assert.False(t, session.IsComputerTurn())
	})

	t.Run("False in human vs human", func(t *testing.T) {
		session := Session{Screen: ScreenPlaying, Mode: ModeHumanVsHuman, ActiveUser: PlayerO}

		assert.False(t, session.IsComputerTurn())
	})

	t.Run("False once the round is over", func(t *testing.T) {
		session := Session{Screen: ScreenPlaying, Mode: ModeVsComputerHard, ActiveUser: PlayerO, Outcome: OutcomeTie}

		assert.False(t, session.IsComputerTurn())
	})

	t.Run("False on the start screen", func(t *testing.T) {
		session := Session{Screen: ScreenStart, Mode: ModeVsComputerHard, ActiveUser: PlayerO}

		assert.False(t, session.IsComputerTurn())
	})
}

func TestSession_Clone(t *testing.T) {
	// Given: a finished session with a winning line
	session := Session{Outcome: OutcomeWinnerX, WinnerLine: []int{0, 1, 2}}

	// When: the clone's line is modified
	clone := session.Clone()
	clone.WinnerLine[0] = 8

	// Then: the original is untouched
	assert.Equal(t, []int{0, 1, 2}, session.WinnerLine)
}

func TestTally_Add(t *testing.T) {
	var tally Tally

	tally.Add(PlayerX)
	tally.Add(PlayerO)
	tally.Add(PlayerX)
	tally.Add(EmptyCell)

	assert.Equal(t, Tally{X: 2, O: 1}, tally)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeWinnerX, OutcomeFor(PlayerX))
	assert.Equal(t, OutcomeWinnerO, OutcomeFor(PlayerO))
	assert.Equal(t, OutcomeNone, OutcomeFor(EmptyCell))

	assert.Equal(t, PlayerX, OutcomeWinnerX.Winner())
	assert.Equal(t, PlayerO, OutcomeWinnerO.Winner())
	assert.Equal(t, EmptyCell, OutcomeTie.Winner())
	assert.Equal(t, EmptyCell, OutcomeNone.Winner())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		value string
		want  Mode
	}{
		{"user", ModeHumanVsHuman},
		{"cpu", ModeVsComputerHard},
		{"CPUEASY", ModeVsComputerEasy},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			mode, err := ParseMode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := ParseMode("medium")
		assert.ErrorIs(t, err, apperror.ErrInvalidMode)
	})
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("x")
	require.NoError(t, err)
	assert.Equal(t, PlayerX, mark)

	mark, err = ParseMark(" O ")
	require.NoError(t, err)
	assert.Equal(t, PlayerO, mark)

	_, err = ParseMark("")
	require.ErrorIs(t, err, apperror.ErrInvalidMark)

	_, err = ParseMark("z")
	require.ErrorIs(t, err, apperror.ErrInvalidMark)
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestParseBoard(t *testing.T) {
	t.Run("Reads all empty markers and separators", func(t *testing.T) {
		// When: parsing a board written with mixed empty markers
		board, err := ParseBoard("XX_|OO.|--x")

		// Then: every cell lands in row-major order
		require.NoError(t, err)
		expected := Board{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, PlayerX,
		}
		assert.Equal(t, expected, board)
	})

	t.Run("Too few cells", func(t *testing.T) {
		_, err := ParseBoard("XO_")
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Too many cells", func(t *testing.T) {
		_, err := ParseBoard("XO_XO_XO_X")
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Unknown character", func(t *testing.T) {
		_, err := ParseBoard("XO_XO_XO?")
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{PlayerX, EmptyCell, PlayerO}

	assert.Equal(t, "X_O\n___\n___", board.String())
}
