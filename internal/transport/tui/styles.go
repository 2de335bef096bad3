package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	markStyles = map[entity.Mark]lipgloss.Style{
		entity.EmptyCell: mutedStyle,
		entity.PlayerX:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		entity.PlayerO:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}

	cellStyle       = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	cursorCellStyle = cellStyle.BorderForeground(lipgloss.Color("15"))
	winCellStyle    = cellStyle.BorderForeground(lipgloss.Color("10")).Background(lipgloss.Color("22"))

	buttonStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("7"))
	activeButtonStyle = buttonStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))

	pickStyle       = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	activePickStyle = pickStyle.BorderForeground(lipgloss.Color("15"))

	dialogStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("11")).Padding(1, 3).Align(lipgloss.Center)
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lossStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
