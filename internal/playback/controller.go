// Package playback owns the playlist-and-playback state machine: the
// ordered track list, the current index, and the reconciliation logic that
// keeps both consistent with the transport under edits, skips and
// asynchronous load outcomes.
package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/llehouerou/spindle/internal/player"
	"github.com/llehouerou/spindle/internal/playlist"
)

// ErrOutOfRange reports an index outside the playlist bounds.
// RemoveAt and Move fail loudly with it; PlayAt treats an invalid index as
// a no-op because selecting past the end is a normal UI race.
var ErrOutOfRange = errors.New("playlist index out of range")

// loadRequest tags one transport load with a generation so that outcomes
// of superseded loads can be discarded.
type loadRequest struct {
	gen  uint64
	path string
	play bool // start playback when the load succeeds
}

// Controller drives a single transport from an editable playlist.
//
// All operations and transport events are serialized by one mutex: no two
// mutations of playlist, current index or transport state interleave. Track
// loads are asynchronous; at most one is in flight, and a later
// PlayAt/Next/Previous supersedes an unresolved one, whose outcome is then
// discarded.
type Controller struct {
	mu sync.Mutex

	transport player.Interface
	tracks    *playlist.Playlist

	current  int // index of the selected track, -1 if none
	lastGood int // index whose source last loaded successfully, -1 once the transport is empty
	playing  bool

	lastPos time.Duration
	lastDur time.Duration

	advance AdvancePolicy

	loadGen  uint64
	inFlight bool
	pending  *loadRequest

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates a controller over the given transport with an empty playlist.
func New(transport player.Interface, advance AdvancePolicy) *Controller {
	c := &Controller{
		transport: transport,
		tracks:    playlist.New(),
		current:   -1,
		lastGood:  -1,
		advance:   advance,
		done:      make(chan struct{}),
	}
	go c.watchFinished()
	return c
}

// watchFinished feeds natural end-of-track completions into the controller.
func (c *Controller) watchFinished() {
	for {
		select {
		case <-c.transport.FinishedChan():
			c.handleFinished()
		case <-c.done:
			return
		}
	}
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close releases the transport and closes all subscriptions.
// Safe to call mid-load: the in-flight outcome is discarded.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.loadGen++ // any in-flight outcome is now stale
	c.pending = nil
	close(c.done)
	transport := c.transport
	c.mu.Unlock()

	err := transport.Close()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return err
}

// --- Playlist edits ---

// Append adds tracks at the end, preserving the given order.
// Neither the current index nor playback changes; no-op on empty input.
func (c *Controller) Append(tracks ...playlist.Track) {
	if len(tracks) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tracks.Add(tracks...)
	c.emitQueueLocked()
}

// RemoveAt removes the track at index. Removing the current track stops
// the transport and clears the selection; removing an earlier track shifts
// the current index down.
func (c *Controller) RemoveAt(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= c.tracks.Len() {
		return ErrOutOfRange
	}

	prev := c.statusLocked()

	switch {
	case index == c.current:
		c.cancelLoadLocked()
		c.transport.Stop()
		c.current = -1
		c.lastGood = -1
		c.playing = false
		c.lastPos = 0
		c.lastDur = 0
	case index < c.current:
		c.current--
	}

	// The rollback target shifts like the current index. It can differ
	// from it only while a load is in flight.
	switch {
	case index == c.lastGood:
		c.lastGood = -1
	case index < c.lastGood:
		c.lastGood--
	}

	c.tracks.Remove(index)
	c.emitQueueLocked()
	c.emitStateLocked(prev)
	return nil
}

// Move moves the track at oldIndex to newIndex (remove-then-insert) and
// reconciles the current index so that "now playing" follows the track.
func (c *Controller) Move(oldIndex, newIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.tracks.Len()
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return ErrOutOfRange
	}
	if oldIndex == newIndex {
		return nil
	}

	c.tracks.Move(oldIndex, newIndex)
	c.current = reconcileMove(c.current, oldIndex, newIndex)
	c.lastGood = reconcileMove(c.lastGood, oldIndex, newIndex)
	c.emitQueueLocked()
	return nil
}

// reconcileMove maps an index through a remove-then-insert move.
func reconcileMove(idx, oldIndex, newIndex int) int {
	switch {
	case idx < 0:
		return idx
	case idx == oldIndex:
		return newIndex
	case oldIndex < idx && idx <= newIndex:
		return idx - 1
	case newIndex <= idx && idx < oldIndex:
		return idx + 1
	default:
		return idx
	}
}

// --- Transport commands ---

// PlayAt selects the track at index and starts an asynchronous load.
// Out-of-range indices are ignored (double-tap during a removal is a
// normal race, not an error).
func (c *Controller) PlayAt(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playAtLocked(index, true)
}

// Next advances to the following track; no-op at the end (no wraparound).
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playAtLocked(c.current+1, true)
}

// Previous moves to the preceding track; no-op at the start.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current <= 0 {
		return
	}
	c.playAtLocked(c.current-1, true)
}

func (c *Controller) playAtLocked(index int, play bool) {
	t := c.tracks.Track(index)
	if t == nil {
		return
	}

	prev := c.statusLocked()
	c.loadGen++
	req := loadRequest{gen: c.loadGen, path: t.Path, play: play}

	// Optimistic selection so the UI highlight follows the command
	// immediately; a failed load rolls it back.
	c.current = index
	c.playing = false
	c.lastPos = 0
	c.lastDur = t.Duration

	if c.inFlight {
		c.pending = &req
		return
	}
	c.startLoadLocked(req)
	c.emitStateLocked(prev)
}

func (c *Controller) startLoadLocked(req loadRequest) {
	c.inFlight = true
	go func() {
		err := c.transport.Load(req.path)
		c.resolveLoad(req, err)
	}()
}

// cancelLoadLocked marks any in-flight or parked load as stale.
func (c *Controller) cancelLoadLocked() {
	c.loadGen++
	c.pending = nil
}

// resolveLoad applies the outcome of one transport load. Outcomes of
// superseded generations are discarded; a parked request is issued in
// their place.
func (c *Controller) resolveLoad(req loadRequest, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if req.gen != c.loadGen {
		if c.pending != nil {
			next := *c.pending
			c.pending = nil
			c.startLoadLocked(next)
			return
		}
		// Cancelled with nothing to follow up: the transport may have
		// loaded a track nobody selected anymore.
		c.inFlight = false
		if err == nil {
			c.transport.Stop()
		}
		return
	}

	c.inFlight = false
	prev := c.statusLocked()

	if err != nil {
		c.sendErrorLocked(ErrorEvent{Operation: "load", Path: req.path, Err: err})
		// Roll back to the last good selection. The failed load already
		// unloaded the transport, so playback stays stopped; a toggle on
		// the reverted track reloads it.
		c.current = c.validIndexLocked(c.lastGood)
		c.lastGood = -1
		c.playing = false
		c.lastPos = 0
		c.lastDur = 0
		c.emitStateLocked(prev)
		return
	}

	// Confirm against the possibly-edited playlist.
	t := c.tracks.Track(c.current)
	if t == nil || t.Path != req.path {
		c.transport.Stop()
		c.current = -1
		c.lastGood = -1
		c.playing = false
		c.emitStateLocked(prev)
		return
	}

	prevIdx := c.lastGood
	var prevTrack *playlist.Track
	if pt := c.tracks.Track(prevIdx); pt != nil {
		cp := *pt
		prevTrack = &cp
	}

	c.lastGood = c.current
	c.lastPos = 0
	if d := c.transport.Duration(); d > 0 {
		c.lastDur = d
	}
	if req.play {
		c.transport.Play()
		c.playing = true
	}

	cur := *t
	c.sendTrackLocked(TrackChange{
		Previous:      prevTrack,
		Current:       &cur,
		PreviousIndex: prevIdx,
		Index:         c.current,
	})
	c.emitStateLocked(prev)
}

// TogglePlayPause pauses when playing, resumes when a track is selected,
// and starts the first track when nothing is selected yet.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.statusLocked()
	switch {
	case c.playing:
		c.transport.Pause()
		c.playing = false
		c.emitStateLocked(prev)
	case c.current >= 0:
		// While a load is unresolved the transport still holds the
		// superseded track; resuming it would play the wrong audio.
		if !c.inFlight && c.transport.State() == player.Paused {
			c.transport.Play()
			c.playing = true
			c.emitStateLocked(prev)
		} else if !c.inFlight {
			// Transport is empty (e.g. after a failed load or idle at the
			// last track): reload the selected track from the start.
			c.playAtLocked(c.current, true)
		}
	case c.tracks.Len() > 0:
		c.playAtLocked(0, true)
	}
}

// Pause pauses playback. Idempotent: pausing when already paused or idle
// changes nothing observable.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.playing {
		return
	}
	prev := c.statusLocked()
	c.transport.Pause()
	c.playing = false
	c.emitStateLocked(prev)
}

// SeekTo seeks to an absolute position, clamped to [0, duration].
func (c *Controller) SeekTo(position time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seekLocked(position)
}

// SeekBy seeks relative to the current position, clamped to
// [0, duration]. With the duration still unknown the upper bound is the
// current position, so a forward seek is a no-op rather than a jump to an
// undefined end.
func (c *Controller) SeekBy(delta time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seekLocked(c.positionLocked() + delta)
}

func (c *Controller) seekLocked(position time.Duration) {
	if c.current < 0 {
		return
	}
	if position < 0 {
		position = 0
	}
	upper := c.durationLocked()
	if upper == 0 {
		// Duration not reported yet: never seek forward past where we are.
		upper = c.positionLocked()
	}
	if position > upper {
		position = upper
	}
	c.transport.SeekTo(position)
	c.lastPos = position
	c.sendPositionLocked(position)
}

// handleFinished reacts to a natural end-of-track: advance to the next
// track, or stop at the last one keeping the selection (no wraparound).
func (c *Controller) handleFinished() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current < 0 {
		return
	}
	// A completion racing an unresolved load belongs to the superseded
	// track; advancing from the optimistic current would clobber the
	// user's selection.
	if c.inFlight || c.pending != nil {
		return
	}

	next := c.current + 1
	if next < c.tracks.Len() {
		c.playAtLocked(next, c.advance == AdvancePlay)
		return
	}

	prev := c.statusLocked()
	c.transport.Stop()
	c.playing = false
	c.lastPos = 0
	c.emitStateLocked(prev)
}

// --- State queries ---

// Status returns the derived playback status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

// IsPlaying returns true while the transport is playing.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// CurrentIndex returns the index of the selected track, -1 if none.
func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// CurrentTrack returns a copy of the selected track, or nil.
func (c *Controller) CurrentTrack() *playlist.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.tracks.Track(c.current)
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// Tracks returns a copy of the playlist.
func (c *Controller) Tracks() []playlist.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracks.Tracks()
}

// Len returns the number of tracks.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracks.Len()
}

// TotalSize returns the summed file size of the playlist in bytes.
func (c *Controller) TotalSize() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracks.TotalSize()
}

// Position returns the playback position of the selected track.
func (c *Controller) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

// Duration returns the duration of the selected track, 0 while unknown.
func (c *Controller) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.durationLocked()
}

// Snapshot returns a consistent copy of the whole controller state for
// synchronous UI reads.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Tracks:       c.tracks.Tracks(),
		CurrentIndex: c.current,
		Position:     c.positionLocked(),
		Duration:     c.durationLocked(),
		Status:       c.statusLocked(),
	}
}

// Snapshot is an immutable view of the controller state.
type Snapshot struct {
	Tracks       []playlist.Track
	CurrentIndex int
	Position     time.Duration
	Duration     time.Duration
	Status       Status
}

// --- Locked helpers ---

func (c *Controller) statusLocked() Status {
	switch {
	case c.current < 0:
		return StatusIdle
	case c.playing:
		return StatusPlaying
	default:
		return StatusPaused
	}
}

func (c *Controller) positionLocked() time.Duration {
	if c.transport.State().IsActive() {
		c.lastPos = c.transport.Position()
	}
	return c.lastPos
}

func (c *Controller) durationLocked() time.Duration {
	// A transport reporting 0 means "unknown yet"; keep the last known value.
	if d := c.transport.Duration(); d > 0 {
		c.lastDur = d
	}
	return c.lastDur
}

func (c *Controller) validIndexLocked(index int) int {
	if index >= 0 && index < c.tracks.Len() {
		return index
	}
	return -1
}

// --- Event emission (all non-blocking) ---

func (c *Controller) emitStateLocked(prev Status) {
	now := c.statusLocked()
	if now == prev {
		return
	}
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendState(StateChange{Previous: prev, Current: now})
	}
	c.subsMu.RUnlock()
}

func (c *Controller) emitQueueLocked() {
	tracks := c.tracks.Tracks()
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendQueue(QueueChange{Tracks: tracks, Index: c.current})
	}
	c.subsMu.RUnlock()
}

func (c *Controller) sendTrackLocked(e TrackChange) {
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendTrack(e)
	}
	c.subsMu.RUnlock()
}

func (c *Controller) sendPositionLocked(pos time.Duration) {
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendPosition(pos)
	}
	c.subsMu.RUnlock()
}

func (c *Controller) sendErrorLocked(e ErrorEvent) {
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
	c.subsMu.RUnlock()
}
