package queuepanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/ui/render"
)

// View renders the queue panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := m.width - 2
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	trackList := m.renderTrackList(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + trackList

	style := panelStyle
	if m.focused {
		style = panelFocusedStyle
	}
	return style.Width(innerWidth).Render(content)
}

// renderHeader renders the playlist position and total size.
func (m Model) renderHeader(innerWidth int) string {
	currentIdx := m.current + 1
	if currentIdx < 1 {
		currentIdx = 0
	}
	left := fmt.Sprintf("Playlist (%d/%d)", currentIdx, len(m.tracks))

	var right string
	if m.totalSize > 0 {
		right = humanize.Bytes(uint64(m.totalSize)) + " "
	}

	leftWidth := innerWidth - lipgloss.Width(right)
	left = render.TruncateAndPad(left, leftWidth)
	return headerStyle.Render(left) + sizeStyle.Render(right)
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	lines := make([]string, 0, max(listHeight, 0))
	for i := range listHeight {
		idx := i + m.offset
		if idx >= len(m.tracks) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderTrackLine(m.tracks[idx], idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders one track row: marker, title, artist, duration.
func (m Model) renderTrackLine(track playlist.Track, idx, width int) string {
	prefix := "  "
	if idx == m.current {
		prefix = playingSymbol + " "
	}

	var suffix string
	if track.Duration > 0 {
		suffix = " " + formatDuration(track.Duration)
	}
	suffixWidth := lipgloss.Width(suffix)

	contentWidth := width - 2 - suffixWidth

	title := track.Title
	if title == "" {
		title = track.Path
	}

	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth
	title = render.TruncateAndPad(title, titleWidth)
	artist := render.TruncateAndPad(track.Artist, artistWidth)

	line := prefix + title + artist + suffix
	return m.trackLineStyle(idx).Render(line)
}

func (m Model) trackLineStyle(idx int) lipgloss.Style {
	isCursor := idx == m.cursor && m.focused
	isPlaying := idx == m.current

	switch {
	case isCursor && isPlaying:
		return cursorStyle.Inherit(playingStyle)
	case isCursor:
		return cursorStyle
	case isPlaying:
		return playingStyle
	default:
		return trackStyle
	}
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
