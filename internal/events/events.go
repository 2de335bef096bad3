package events

import "github.com/rocketscienceinc/tictactoe/internal/entity"

// Event types
const (
	DialogShow = "dialog:show"
	DialogHide = "dialog:hide"
)

// DialogModeWinner is the dialog mode for a finished round, won or tied.
const DialogModeWinner = "winner"

// Event is a notification sent to the presentation layer.
type Event struct {
	Type    string `json:"event"`
	Payload any    `json:"payload"`
}

// DialogShowPayload is the payload for the "dialog:show" event.
type DialogShowPayload struct {
	SessionID  string         `json:"session_id"`
	Mode       string         `json:"mode"`
	Outcome    entity.Outcome `json:"outcome"`
	WinnerLine []int          `json:"winner_line,omitempty"`
	Tally      entity.Tally   `json:"tally"`
}

// DialogHidePayload is the payload for the "dialog:hide" event.
type DialogHidePayload struct {
	SessionID string `json:"session_id"`
}

func NewDialogShow(session entity.Session) Event {
	return Event{
		Type: DialogShow,
		Payload: DialogShowPayload{
			SessionID:  session.ID,
			Mode:       DialogModeWinner,
			Outcome:    session.Outcome,
			WinnerLine: session.Clone().WinnerLine,
			Tally:      session.Tally,
		},
	}
}

func NewDialogHide(sessionID string) Event {
	return Event{
		Type:    DialogHide,
		Payload: DialogHidePayload{SessionID: sessionID},
	}
}

// Notifier receives events synchronously from the session controller.
type Notifier interface {
	Notify(event Event)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(event Event)

func (that NotifierFunc) Notify(event Event) {
	that(event)
}

// Fanout forwards every event to each notifier in order.
type Fanout []Notifier

func (that Fanout) Notify(event Event) {
	for _, notifier := range that {
		notifier.Notify(event)
	}
}
