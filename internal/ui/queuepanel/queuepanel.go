// Package queuepanel renders the playlist as a scrollable panel with a
// cursor and a now-playing marker.
package queuepanel

import (
	"github.com/llehouerou/spindle/internal/playlist"
)

// Model represents the queue panel state. It holds a copy of the playlist
// handed to it via SetQueue; the controller remains the source of truth.
type Model struct {
	tracks    []playlist.Track
	current   int
	totalSize int64
	cursor    int
	offset    int
	width     int
	height    int
	focused   bool
}

// New creates an empty queue panel.
func New() Model {
	return Model{current: -1}
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// SetQueue replaces the displayed tracks and now-playing index.
// The cursor is clamped into the new bounds.
func (m *Model) SetQueue(tracks []playlist.Track, current int) {
	m.tracks = tracks
	m.current = current
	m.totalSize = 0
	for _, t := range tracks {
		m.totalSize += t.Size
	}
	if m.cursor >= len(tracks) {
		m.cursor = len(tracks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

// FollowCurrent moves the cursor onto the now-playing track.
func (m *Model) FollowCurrent() {
	if m.current >= 0 && m.current < len(m.tracks) {
		m.cursor = m.current
		m.clampScroll()
	}
}

// Cursor returns the cursor index, -1 when the panel is empty.
func (m Model) Cursor() int {
	if len(m.tracks) == 0 {
		return -1
	}
	return m.cursor
}

// Len returns the number of displayed tracks.
func (m Model) Len() int {
	return len(m.tracks)
}

// CursorUp moves the cursor one row up.
func (m *Model) CursorUp() {
	m.moveCursor(-1)
}

// CursorDown moves the cursor one row down.
func (m *Model) CursorDown() {
	m.moveCursor(1)
}

// CursorHome moves the cursor to the first track.
func (m *Model) CursorHome() {
	m.cursor = 0
	m.clampScroll()
}

// CursorEnd moves the cursor to the last track.
func (m *Model) CursorEnd() {
	m.cursor = max(len(m.tracks)-1, 0)
	m.clampScroll()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.tracks) && len(m.tracks) > 0 {
		m.cursor = len(m.tracks) - 1
	}
	m.clampScroll()
}

// clampScroll keeps the cursor inside the visible window.
func (m *Model) clampScroll() {
	h := m.listHeight()
	if h <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// listHeight is the number of track rows that fit inside the panel
// (borders, header and separator subtracted).
func (m Model) listHeight() int {
	return m.height - 4
}
