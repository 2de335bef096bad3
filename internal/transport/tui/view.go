package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var buttonLabels = map[entity.Mode]string{
	entity.ModeVsComputerHard: "New game (vs CPU) hard",
	entity.ModeVsComputerEasy: "New game (vs CPU) easy",
	entity.ModeHumanVsHuman:   "New game (1 vs 1)",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	session := m.controller.Snapshot()

	var body string
	switch {
	case !session.IsPlaying():
		body = m.startView()
	case m.dialog.Visible():
		body = lipgloss.JoinVertical(lipgloss.Center, m.boardView(session), "", dialogView(session))
	default:
		body = m.boardView(session)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}

	return view
}

func (m Model) startView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(markStyles[entity.PlayerX].Render("X") + " " + markStyles[entity.PlayerO].Render("O")))
	b.WriteString("\n\n")
	b.WriteString("Pick player 1's mark\n")

	picks := make([]string, 0, 2)
	for _, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		style := pickStyle
		if mark == m.mark {
			style = activePickStyle
		}
		picks = append(picks, style.Render(markStyles[mark].Render(mark.Symbol())))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, picks...))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("X goes first"))
	b.WriteString("\n\n")

	for i, mode := range startButtons {
		style := buttonStyle
		if i == m.buttonCursor {
			style = activeButtonStyle
		}
		b.WriteString(style.Render(buttonLabels[mode]))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) boardView(session entity.Session) string {
	header := fmt.Sprintf("%s  %s  %s turn",
		titleStyle.Render(session.Mode.String()),
		markStyles[entity.PlayerX].Render("X")+" "+markStyles[entity.PlayerO].Render("O"),
		markStyles[session.Turn()].Render(session.Turn().Symbol()),
	)

	rows := make([]string, 0, 3)
	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			cells = append(cells, m.cellView(session, row*3+col))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", grid, "", tallyView(session))
}

func (m Model) cellView(session entity.Session, cell int) string {
	style := cellStyle
	switch {
	case slices.Contains(session.WinnerLine, cell):
		style = winCellStyle
	case cell == m.cellCursor && !session.IsFinished():
		style = cursorCellStyle
	}

	mark := session.Board[cell]
	label := markStyles[mark].Render(mark.Symbol())
	if mark == entity.EmptyCell {
		label = mutedStyle.Render(fmt.Sprint(cell + 1))
	}

	return style.Render(label)
}

func tallyView(session entity.Session) string {
	return fmt.Sprintf("%s %d    %s %d",
		markStyles[entity.PlayerX].Render("X ("+playerLabel(session, entity.PlayerX)+")"), session.Tally.X,
		markStyles[entity.PlayerO].Render("O ("+playerLabel(session, entity.PlayerO)+")"), session.Tally.O,
	)
}

func playerLabel(session entity.Session, mark entity.Mark) string {
	switch {
	case session.Mode.VsComputer() && mark == session.ActiveUser:
		return "you"
	case session.Mode.VsComputer():
		return "cpu"
	case mark == session.ActiveUser:
		return "P1"
	default:
		return "P2"
	}
}

func dialogView(session entity.Session) string {
	var headline string

	winner := session.Outcome.Winner()
	switch {
	case session.Outcome == entity.OutcomeTie:
		headline = "ROUND TIED"
	case session.Mode.VsComputer() && winner == session.ActiveUser:
		headline = winStyle.Render("YOU WON!")
	case session.Mode.VsComputer():
		headline = lossStyle.Render("OH NO, YOU LOST")
	default:
		headline = winStyle.Render(fmt.Sprintf("PLAYER %s WINS!", strings.TrimPrefix(playerLabel(session, winner), "P")))
	}

	if winner != entity.EmptyCell {
		headline += "\n" + markStyles[winner].Render(winner.Symbol()) + " takes the round"
	}

	return dialogStyle.Render(headline + "\n\n" + mutedStyle.Render("n next round • esc quit to start"))
}
