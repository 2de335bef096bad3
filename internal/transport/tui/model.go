package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type controller interface {
	StartSession(mode entity.Mode, humanMark entity.Mark)
	ApplyMove(cell int)
	ResetToStart()
	ContinueRound()
	Snapshot() entity.Session
}

// startButtons are the modes offered on the start screen, top to bottom.
var startButtons = []entity.Mode{
	entity.ModeVsComputerHard,
	entity.ModeVsComputerEasy,
	entity.ModeHumanVsHuman,
}

// Model is the Bubble Tea model for the game. All session changes go through
// the controller; the model only keeps cursors and the mark picked on the
// start screen.
type Model struct {
	logger     *slog.Logger
	controller controller
	dialog     *Dialog

	keys KeyMap
	help help.Model

	mark         entity.Mark
	buttonCursor int
	cellCursor   int

	width    int
	height   int
	quitting bool
}

// NewModel creates the model with the start screen preset to mode and mark.
func NewModel(logger *slog.Logger, controller controller, dialog *Dialog, mode entity.Mode, mark entity.Mark) Model {
	if mark != entity.PlayerO {
		mark = entity.PlayerX
	}

	buttonCursor := 0
	for i, button := range startButtons {
		if button == mode {
			buttonCursor = i
		}
	}

	return Model{
		logger:       logger,
		controller:   controller,
		dialog:       dialog,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		mark:         mark,
		buttonCursor: buttonCursor,
		cellCursor:   entity.BoardSize / 2,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch {
	case !m.controller.Snapshot().IsPlaying():
		return m.handleStartKey(msg)
	case m.dialog.Visible():
		return m.handleDialogKey(msg)
	default:
		return m.handleBoardKey(msg)
	}
}

func (m Model) handleStartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PickX):
		m.mark = entity.PlayerX

	case key.Matches(msg, m.keys.PickO):
		m.mark = entity.PlayerO

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.mark = m.mark.Opponent()

	case key.Matches(msg, m.keys.Up):
		if m.buttonCursor > 0 {
			m.buttonCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.buttonCursor < len(startButtons)-1 {
			m.buttonCursor++
		}

	case key.Matches(msg, m.keys.Select):
		mode := startButtons[m.buttonCursor]
		m.logger.Debug("start selected", "mode", mode, "mark", m.mark)

		m.cellCursor = entity.BoardSize / 2
		m.controller.StartSession(mode, m.mark)
	}

	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, col := m.cellCursor/3, m.cellCursor%3

	switch {
	case key.Matches(msg, m.keys.Up):
		row = max(row-1, 0)
	case key.Matches(msg, m.keys.Down):
		row = min(row+1, 2)
	case key.Matches(msg, m.keys.Left):
		col = max(col-1, 0)
	case key.Matches(msg, m.keys.Right):
		col = min(col+1, 2)

	case key.Matches(msg, m.keys.Select):
		m.controller.ApplyMove(m.cellCursor)
		return m, nil

	case key.Matches(msg, m.keys.Cell):
		cell := int(msg.Runes[0] - '1')
		m.cellCursor = cell
		m.controller.ApplyMove(cell)
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.controller.ResetToStart()
		return m, nil
	}

	m.cellCursor = row*3 + col

	return m, nil
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.controller.ContinueRound()
	case key.Matches(msg, m.keys.Back):
		m.controller.ResetToStart()
	}

	return m, nil
}
