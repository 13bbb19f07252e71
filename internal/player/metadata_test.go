package player

import "testing"

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/song.mp3", true},
		{"/music/song.MP3", true},
		{"/music/song.flac", true},
		{"/music/song.wav", true},
		{"/music/song.ogg", true},
		{"/music/song.m4a", false},
		{"/music/cover.jpg", false},
		{"/music/noext", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestAudioExtensions_CoveredByIsAudioFile(t *testing.T) {
	for _, ext := range AudioExtensions() {
		if !IsAudioFile("/x" + ext) {
			t.Errorf("extension %q not accepted by IsAudioFile", ext)
		}
	}
}
