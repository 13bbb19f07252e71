package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/playlist"
)

func TestNewState(t *testing.T) {
	snap := playback.Snapshot{
		Tracks: []playlist.Track{
			{Path: "/a.mp3", Title: "Song A", Artist: "Artist", Album: "Album"},
			{Path: "/b.mp3", Title: "Song B"},
		},
		CurrentIndex: 0,
		Position:     30 * time.Second,
		Duration:     3 * time.Minute,
		Status:       playback.StatusPlaying,
	}

	s := NewState(snap)
	if !s.Playing || s.Paused {
		t.Errorf("Playing/Paused = %v/%v, want true/false", s.Playing, s.Paused)
	}
	if s.Title != "Song A" || s.Artist != "Artist" {
		t.Errorf("Title/Artist = %q/%q, want Song A/Artist", s.Title, s.Artist)
	}
	if s.Position != 30*time.Second || s.Duration != 3*time.Minute {
		t.Errorf("Position/Duration = %v/%v", s.Position, s.Duration)
	}
}

func TestNewState_NothingSelected(t *testing.T) {
	snap := playback.Snapshot{
		Tracks:       []playlist.Track{{Path: "/a.mp3"}},
		CurrentIndex: -1,
		Status:       playback.StatusIdle,
	}
	s := NewState(snap)
	if s.Playing || s.Paused {
		t.Errorf("state = %+v, want empty for idle snapshot", s)
	}
}

func TestNewState_FallsBackToPath(t *testing.T) {
	snap := playback.Snapshot{
		Tracks:       []playlist.Track{{Path: "/music/a.mp3"}},
		CurrentIndex: 0,
		Status:       playback.StatusPaused,
	}
	s := NewState(snap)
	if s.Title != "/music/a.mp3" {
		t.Errorf("Title = %q, want path fallback", s.Title)
	}
}

func TestRender(t *testing.T) {
	s := State{
		Playing:  true,
		Title:    "Song A",
		Artist:   "Artist",
		Album:    "Album",
		Position: time.Minute,
		Duration: 2 * time.Minute,
	}

	out := Render(s, 80)
	if out == "" {
		t.Fatal("Render() = empty, want bar")
	}
	if !strings.Contains(out, "Song A") {
		t.Error("bar should contain the title")
	}
	if !strings.Contains(out, "1:00 / 2:00") {
		t.Error("bar should contain position/duration")
	}
	if !strings.Contains(out, playSymbol) {
		t.Error("bar should contain the play symbol")
	}

	lines := strings.Split(out, "\n")
	if len(lines) != Height {
		t.Errorf("bar height = %d lines, want %d", len(lines), Height)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 80 {
			t.Errorf("line %d width = %d, want 80", i, w)
		}
	}
}

func TestRender_PausedSymbol(t *testing.T) {
	s := State{Paused: true, Title: "Song", Duration: time.Minute}
	out := Render(s, 60)
	if !strings.Contains(out, pauseSymbol) {
		t.Error("bar should contain the pause symbol when paused")
	}
}

func TestRender_EmptyWhenStopped(t *testing.T) {
	if out := Render(State{}, 80); out != "" {
		t.Errorf("Render(empty state) = %q, want empty", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{time.Minute, "1:00"},
		{83 * time.Second, "1:23"},
		{3601 * time.Second, "60:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
