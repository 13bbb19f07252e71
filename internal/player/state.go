package player

// State represents the transport state machine.
//
// The state machine has three states with the following valid transitions:
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │
//	└──────────┘                 └──────────┘
//	     ▲                          │    ▲
//	     │ stop                play │    │ pause
//	     │                          ▼    │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Playing │
//	                  stop       └──────────┘
//
// Valid transitions:
//   - Stopped → Paused  (via Load, track held ready)
//   - Paused  → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - Playing → Stopped (via Stop)
//   - Paused  → Stopped (via Stop)
//
// Toggle() cycles: Playing ↔ Paused (no-op if Stopped)
//
// Invalid/No-op transitions (handled gracefully):
//   - Stopped → Playing (ignored, nothing loaded)
//   - Stopped → Stopped (ignored)
//   - Paused  → Paused  (ignored)
//   - Playing → Playing (ignored)
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
