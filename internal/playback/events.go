package playback

import (
	"time"

	"github.com/llehouerou/spindle/internal/playlist"
)

// StateChange is emitted when the playback status changes.
type StateChange struct {
	Previous Status
	Current  Status
}

// TrackChange is emitted when playback moves to a different track.
//
// Emitted only when a load resolves successfully: rapid skips issued while
// a load is in flight supersede each other, so only the surviving request
// fires a TrackChange. The app handles all track-related side effects
// (notifications, player bar refresh) in response to this event.
type TrackChange struct {
	Previous      *playlist.Track
	Current       *playlist.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the playlist contents change.
type QueueChange struct {
	Tracks []playlist.Track
	Index  int
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when an operation fails in a recoverable way,
// e.g. an unreadable file on load.
type ErrorEvent struct {
	Operation string // e.g. "load", "seek"
	Path      string // track path if applicable
	Err       error
}
