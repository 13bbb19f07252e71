package playback

// Status represents the controller's playback status.
//
// Status is derived, not stored independently: Idle means no track is
// selected (current index -1); otherwise the track referenced by the
// current index is loaded in the transport, paused or playing.
type Status int

const (
	StatusIdle Status = iota
	StatusPaused
	StatusPlaying
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusPaused:
		return "Paused"
	case StatusPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is selected (paused or playing).
func (s Status) IsActive() bool {
	return s == StatusPlaying || s == StatusPaused
}

// AdvancePolicy controls what happens to the next track after a natural
// end-of-track: load it and keep playing, or load it and hold paused.
type AdvancePolicy int

const (
	AdvancePlay AdvancePolicy = iota
	AdvancePause
)

// String returns the policy name.
func (p AdvancePolicy) String() string {
	switch p {
	case AdvancePlay:
		return "Play"
	case AdvancePause:
		return "Pause"
	default:
		return "Unknown"
	}
}
