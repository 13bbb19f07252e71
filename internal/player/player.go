package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Player decodes and plays one audio file at a time through the speaker.
type Player struct {
	state    State
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File

	trackInfo *TrackInfo

	volumeLevel float64
	muted       bool

	finishedCh chan struct{}
	seekCh     chan time.Duration
}

var (
	speakerInitialized bool
	speakerRate        beep.SampleRate
)

// New creates a stopped player. Close must be called to release the seek
// worker and any loaded track.
func New() *Player {
	p := &Player{
		state:       Stopped,
		volumeLevel: 1.0,
		finishedCh:  make(chan struct{}, 1),
		seekCh:      make(chan time.Duration, 1),
	}
	go p.seekLoop()
	return p
}

// Load decodes the file at path and holds it paused, replacing any
// previously loaded track. The caller decides when playback starts.
func (p *Player) Load(path string) error {
	p.Stop()

	ext := strings.ToLower(filepath.Ext(path))
	if !IsAudioFile(path) {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
		speakerRate = format.SampleRate
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.muted || p.volumeLevel == 0,
	}

	info, _ := ReadTrackInfo(path)
	if info == nil {
		info = &TrackInfo{
			Path:  path,
			Title: filepath.Base(path),
		}
	}
	info.Duration = format.SampleRate.D(streamer.Len())
	p.trackInfo = info

	// The speaker was initialized with the first track's rate; resample
	// anything that doesn't match it.
	var out beep.Streamer = p.volume
	if format.SampleRate != speakerRate {
		out = beep.Resample(4, format.SampleRate, speakerRate, p.volume)
	}

	p.state = Paused

	speaker.Play(beep.Seq(out, beep.Callback(func() {
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	})))

	return nil
}

// Play starts or resumes output of the loaded track.
func (p *Player) Play() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Play()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

// Stop stops playback and releases the loaded track.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.trackInfo = nil
	p.state = Stopped
}

// State returns the current transport state.
func (p *Player) State() State {
	return p.state
}

// TrackInfo returns metadata for the loaded track, or nil if none.
func (p *Player) TrackInfo() *TrackInfo {
	return p.trackInfo
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	// Read position without lock - may be slightly stale but avoids deadlocks.
	return p.format.SampleRate.D(p.streamer.Position())
}

// Duration returns the total duration of the loaded track.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// FinishedChan returns the channel that fires once when a track reaches
// its natural end. Manual stops do not fire it.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// SeekTo moves playback to an absolute position.
// Non-blocking: sends to a channel, dropping an older request if one is pending.
func (p *Player) SeekTo(position time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}

	select {
	case p.seekCh <- position:
	default:
		// Channel full, drain and send new value
		select {
		case <-p.seekCh:
		default:
		}
		select {
		case p.seekCh <- position:
		default:
		}
	}
}

// Close stops playback and shuts down the seek worker.
func (p *Player) Close() error {
	p.Stop()
	close(p.seekCh)
	return nil
}

// seekLoop processes seek requests sequentially.
// Only the most recent seek is processed, older ones are dropped.
func (p *Player) seekLoop() {
	for position := range p.seekCh {
		p.doSeek(position)
	}
}

// doSeek performs the actual seek operation.
func (p *Player) doSeek(position time.Duration) {
	// Quick check without lock - if already stopped, skip entirely
	if p.streamer == nil || p.state == Stopped || p.volume == nil {
		return
	}

	streamer := p.streamer
	maxPos := streamer.Len()
	newPos := p.format.SampleRate.N(position)

	// Seeking past the end counts as reaching it
	if newPos >= maxPos {
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
		return
	}

	speaker.Lock()
	// Re-check under lock in case Stop() was called
	if p.streamer == nil || p.state == Stopped || p.volume == nil {
		speaker.Unlock()
		return
	}

	newPos = max(newPos, 0)

	// Mute, seek, then unmute to avoid audio artifacts
	p.volume.Silent = true
	_ = p.streamer.Seek(newPos)
	speaker.Unlock()

	// Brief pause to let the buffer clear before unmuting
	time.Sleep(100 * time.Millisecond)

	if p.volume == nil || p.state == Stopped {
		return
	}

	speaker.Lock()
	if p.volume != nil {
		p.volume.Silent = p.muted || p.volumeLevel == 0
	}
	speaker.Unlock()
}
