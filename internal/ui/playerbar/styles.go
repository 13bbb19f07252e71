package playerbar

import "github.com/charmbracelet/lipgloss"

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
)

var (
	barStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	progressFilledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	progressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))
)
