package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player.
// Load can be gated with BlockLoads to exercise in-flight load handling.
type Mock struct {
	mu sync.Mutex

	state      State
	position   time.Duration
	duration   time.Duration
	trackInfo  *TrackInfo
	loadErr    error
	loadErrs   map[string]error
	loadCalls  []string
	seekCalls  []time.Duration
	loadGate   chan struct{}
	finishedCh chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		loadErrs:   make(map[string]error),
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Load(path string) error {
	m.mu.Lock()
	gate := m.loadGate
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadCalls = append(m.loadCalls, path)
	if err, ok := m.loadErrs[path]; ok {
		return err
	}
	if m.loadErr != nil {
		return m.loadErr
	}

	m.state = Paused
	m.position = 0
	m.trackInfo = &TrackInfo{Path: path, Title: path, Duration: m.duration}
	return nil
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Playing:
		m.state = Paused
	case Paused:
		m.state = Playing
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
	m.trackInfo = nil
	m.position = 0
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) TrackInfo() *TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trackInfo
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Stopped {
		return 0
	}
	return m.duration
}

func (m *Mock) SeekTo(position time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, position)
	m.position = position
}

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

func (m *Mock) Close() error {
	m.Stop()
	return nil
}

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// SetLoadErrorFor makes Load fail only for the given path.
func (m *Mock) SetLoadErrorFor(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErrs[path] = err
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.loadCalls))
	copy(calls, m.loadCalls)
	return calls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]time.Duration, len(m.seekCalls))
	copy(calls, m.seekCalls)
	return calls
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// BlockLoads gates Load calls until the returned release function is called.
// Each release unblocks one pending or future Load.
func (m *Mock) BlockLoads() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.loadGate = gate
	m.mu.Unlock()
	return func() { gate <- struct{}{} }
}

// UnblockLoads removes the load gate entirely.
func (m *Mock) UnblockLoads() {
	m.mu.Lock()
	gate := m.loadGate
	m.loadGate = nil
	m.mu.Unlock()
	if gate != nil {
		close(gate)
	}
}

// SimulateFinished simulates a track finishing.
func (m *Mock) SimulateFinished() {
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
