// Package playerbar renders the bottom playback bar: status symbol, track
// metadata, progress and time.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/ui/render"
)

// Height is the total height of the bar including its border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Playing  bool
	Paused   bool
	Title    string
	Artist   string
	Album    string
	Position time.Duration
	Duration time.Duration
}

// NewState builds a render state from a controller snapshot.
// Returns an empty State when nothing is selected.
func NewState(s playback.Snapshot) State {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Tracks) {
		return State{}
	}
	t := s.Tracks[s.CurrentIndex]
	return State{
		Playing:  s.Status == playback.StatusPlaying,
		Paused:   s.Status == playback.StatusPaused,
		Title:    displayTitle(t),
		Artist:   t.Artist,
		Album:    t.Album,
		Position: s.Position,
		Duration: s.Duration,
	}
}

func displayTitle(t playlist.Track) string {
	if t.Title != "" {
		return t.Title
	}
	return t.Path
}

// Render returns the player bar string for the given width.
// Returns an empty string when nothing is selected.
func Render(s State, width int) string {
	if !s.Playing && !s.Paused {
		return ""
	}

	innerWidth := max(width-6, 0)

	status := playSymbol
	if s.Paused {
		status = pauseSymbol
	}

	title := render.Sanitize(s.Title)
	if title == "" {
		title = "Unknown Track"
	}

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, render.Sanitize(s.Artist))
	}
	if s.Album != "" {
		infoParts = append(infoParts, render.Sanitize(s.Album))
	}
	info := strings.Join(infoParts, " · ")

	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))

	separator := "   "
	sepWidth := lipgloss.Width(separator)
	timeWidth := lipgloss.Width(timeStr)
	statusWidth := lipgloss.Width(status + "  ")

	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	// Reserve minimum space for the progress bar
	minBarWidth := 10
	availableForContent := innerWidth - statusWidth - timeWidth - sepWidth*2 - minBarWidth

	var styledTitle, styledInfo string
	var usedContentWidth int

	switch {
	case titleWidth+sepWidth+infoWidth <= availableForContent:
		styledTitle = titleStyle.Render(title)
		styledInfo = infoStyle.Render(info)
		usedContentWidth = titleWidth + sepWidth + infoWidth
	case titleWidth+sepWidth <= availableForContent && info != "":
		maxInfo := availableForContent - titleWidth - sepWidth
		styledTitle = titleStyle.Render(title)
		styledInfo = infoStyle.Render(render.Truncate(info, maxInfo))
		usedContentWidth = titleWidth + sepWidth + maxInfo
	default:
		maxTitle := max(availableForContent, 10)
		styledTitle = titleStyle.Render(render.Truncate(title, maxTitle))
		styledInfo = ""
		usedContentWidth = min(titleWidth, maxTitle)
	}

	barWidth := max(innerWidth-usedContentWidth-statusWidth-timeWidth-sepWidth*2, 5)

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)
	filledBar := progressFilledStyle.Render(strings.Repeat("━", filled))
	emptyBar := progressEmptyStyle.Render(strings.Repeat("─", barWidth-filled))

	var content strings.Builder
	content.WriteString(styledTitle)
	if styledInfo != "" {
		content.WriteString(separator)
		content.WriteString(styledInfo)
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(filledBar)
	content.WriteString(emptyBar)
	content.WriteString(separator)
	content.WriteString(timeStyle.Render(timeStr))

	return barStyle.Padding(0, 2).Width(width - 2).Render(content.String())
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
