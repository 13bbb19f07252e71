package player

import "time"

// Interface defines the transport contract for dependency injection and testing.
//
// Load decodes a file and holds it paused; Play starts output. Splitting the
// two lets callers decide whether a freshly loaded track starts playing or
// sits ready (auto-advance supports both policies).
type Interface interface {
	Load(path string) error
	Play()
	Pause()
	Toggle()
	Stop()
	State() State
	TrackInfo() *TrackInfo
	Position() time.Duration
	Duration() time.Duration
	SeekTo(position time.Duration)
	FinishedChan() <-chan struct{}
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
