package tui

import (
	"github.com/rocketscienceinc/tictactoe/internal/events"
)

// Dialog tracks the termination dialog from session events.
type Dialog struct {
	visible bool
	mode    string
}

func NewDialog() *Dialog {
	return &Dialog{}
}

func (that *Dialog) Notify(event events.Event) {
	switch event.Type {
	case events.DialogShow:
		that.visible = true
		if payload, ok := event.Payload.(events.DialogShowPayload); ok {
			that.mode = payload.Mode
		}
	case events.DialogHide:
		that.visible = false
		that.mode = ""
	}
}

func (that *Dialog) Visible() bool {
	return that.visible
}

func (that *Dialog) Mode() string {
	return that.mode
}
