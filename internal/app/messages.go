package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/playback"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// PlaybackMessage is implemented by messages related to audio playback.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// InputMessage is implemented by messages related to user input handling.
type InputMessage interface {
	tea.Msg
	inputMessage()
}

// TickMsg is sent periodically to update the UI (e.g., progress bar).
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// ServiceStateChangedMsg is sent when the playback status changes.
type ServiceStateChangedMsg struct {
	Previous playback.Status
	Current  playback.Status
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when a track load resolves successfully.
type ServiceTrackChangedMsg struct {
	PreviousIndex int
	Index         int
	Title         string
	Artist        string
}

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceQueueChangedMsg is sent when the playlist contents change.
type ServiceQueueChangedMsg struct {
	Index int
}

func (ServiceQueueChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent after an explicit seek.
type ServicePositionChangedMsg struct {
	Position time.Duration
}

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when a playback operation fails.
type ServiceErrorMsg struct {
	Operation string
	Path      string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the controller shuts down.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// StderrMsg carries a captured stderr line from C audio libraries.
type StderrMsg struct {
	Line string
}

func (StderrMsg) inputMessage() {}
