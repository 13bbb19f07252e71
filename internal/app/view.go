package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spindle/internal/ui/playerbar"
	"github.com/llehouerou/spindle/internal/ui/render"
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196"))

var pickerTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var b strings.Builder

	if m.Focus == FocusPicker {
		b.WriteString(pickerTitleStyle.Render("Add files: " + render.Sanitize(m.Picker.CurrentDirectory)))
		b.WriteString("\n")
		b.WriteString(m.Picker.View())
	} else {
		b.WriteString(m.QueuePanel.View())
	}

	if m.ErrorMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(render.Truncate(m.ErrorMsg, m.Width)))
	}

	if bar := playerbar.Render(playerbar.NewState(m.Controller.Snapshot()), m.Width); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}

	return b.String()
}
