package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")

	ErrInvalidBoard  = errors.New("invalid board")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrInvalidMode   = errors.New("invalid game mode")
	ErrBoardTerminal = errors.New("board has no moves left")

	ErrPublisherUnavailable = errors.New("event publisher unavailable")
)
