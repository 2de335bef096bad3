package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/bot"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/events"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type notifier interface {
	Notify(event events.Event)
}

// SessionController owns the only game session and is the only code that
// changes it. Every operation runs to completion, computer replies included,
// before it returns. It is not safe for concurrent use.
type SessionController struct {
	logger    *slog.Logger
	notifier  notifier
	selectors bot.Factory

	session  entity.Session
	selector bot.Selector
}

func NewSessionController(logger *slog.Logger, notifier notifier, selectors bot.Factory) *SessionController {
	return &SessionController{
		logger:    logger,
		notifier:  notifier,
		selectors: selectors,

		session: entity.NewSession(),
	}
}

// Snapshot returns a copy of the session for rendering.
func (that *SessionController) Snapshot() entity.Session {
	return that.session.Clone()
}

// StartSession begins play in mode with the human holding humanMark.
// X always moves first, so a human playing O against the computer sees the
// computer's opening before this returns.
func (that *SessionController) StartSession(mode entity.Mode, humanMark entity.Mark) {
	log := that.logger.With("method", "StartSession")

	mode, err := entity.ParseMode(string(mode))
	if err != nil {
		log.Warn("unknown mode, playing 1 vs 1", "error", err)
		mode = entity.ModeHumanVsHuman
	}

	humanMark, err = entity.ParseMark(string(humanMark))
	if err != nil {
		log.Warn("unknown mark, playing X", "error", err)
		humanMark = entity.PlayerX
	}

	that.session = entity.Session{
		ID:         uuid.NewString(),
		Mode:       mode,
		ActiveUser: humanMark,
		Screen:     entity.ScreenPlaying,
	}
	that.selector = that.selectors(mode, humanMark)

	log.Info("session started", "session_id", that.session.ID, "mode", mode, "human", humanMark)

	that.afterMutation()
}

// CheckMove reports why ApplyMove would ignore a human move on cell, or nil
// when it would be played.
func (that *SessionController) CheckMove(cell int) error {
	if err := that.checkCell(cell); err != nil {
		return err
	}

	if that.session.IsComputerTurn() {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// ApplyMove plays cell for the player whose turn it is. A move that breaks
// any rule is ignored without touching the session.
func (that *SessionController) ApplyMove(cell int) {
	log := that.logger.With("method", "ApplyMove", "cell", cell)

	if err := that.CheckMove(cell); err != nil {
		log.Debug("move ignored", "reason", err)
		return
	}

	that.place(cell)
	that.afterMutation()
}

// ResetToStart drops the session, tally included, and returns to the start screen.
func (that *SessionController) ResetToStart() {
	log := that.logger.With("method", "ResetToStart")

	sessionID := that.session.ID

	that.session = entity.NewSession()
	that.selector = nil

	that.notifier.Notify(events.NewDialogHide(sessionID))

	log.Info("session reset", "session_id", sessionID)
}

// ContinueRound clears the board for another round and keeps the tally.
// The previous winner moves first; after a tie the stale outcome is not O,
// so X moves first.
func (that *SessionController) ContinueRound() {
	log := that.logger.With("method", "ContinueRound")

	if !that.session.IsPlaying() {
		log.Debug("no session to continue")
		return
	}

	previous := that.session.Outcome

	that.session.Board = entity.Board{}
	that.session.XNext = previous == entity.OutcomeWinnerO
	that.session.Outcome = entity.OutcomeNone
	that.session.WinnerLine = nil

	that.notifier.Notify(events.NewDialogHide(that.session.ID))

	log.Info("round continued", "session_id", that.session.ID, "previous", previous, "first", that.session.Turn())

	that.afterMutation()
}

func (that *SessionController) checkCell(cell int) error {
	switch {
	case !that.session.IsPlaying():
		return apperror.ErrGameIsNotStarted
	case that.session.IsFinished():
		return apperror.ErrGameFinished
	case !tictactoe.IsValidCell(cell):
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	case that.session.Board[cell] != entity.EmptyCell:
		return apperror.ErrCellOccupied
	}

	return nil
}

// place writes the mark of the player to move, flips the turn and settles
// the outcome.
func (that *SessionController) place(cell int) {
	mark := that.session.Turn()

	that.session.Board[cell] = mark
	that.session.XNext = !that.session.XNext

	that.updateOutcome()
}

func (that *SessionController) updateOutcome() {
	log := that.logger.With("method", "updateOutcome", "session_id", that.session.ID)

	switch result := tictactoe.DetectOutcome(that.session.Board); {
	case result.Found:
		that.session.Outcome = entity.OutcomeFor(result.Winner)
		that.session.WinnerLine = result.Line[:]
		that.session.Tally.Add(result.Winner)

		log.Info("round won", "winner", result.Winner, "line", result.Line)
	case tictactoe.IsFull(that.session.Board):
		that.session.Outcome = entity.OutcomeTie

		log.Info("round tied")
	default:
		return
	}

	that.notifier.Notify(events.NewDialogShow(that.session))
}

// afterMutation plays computer turns until the human is to move or the round
// is over. Each pass places one mark, so the loop ends within nine passes.
func (that *SessionController) afterMutation() {
	log := that.logger.With("method", "afterMutation")

	for that.selector != nil && that.session.IsComputerTurn() {
		mark := that.session.Turn()
		cell := that.selector.ChooseMove(that.session.Board, mark)

		if err := that.checkCell(cell); err != nil {
			log.Error("computer chose an illegal move", "mark", mark, "cell", cell, "error", err)
			return
		}

		log.Debug("computer moved", "mark", mark, "cell", cell)

		that.place(cell)
	}
}
