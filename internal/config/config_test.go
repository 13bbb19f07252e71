package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"github.com/llehouerou/spindle/internal/playback"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/library/albums",
			expected: filepath.Join(home, "music", "library", "albums"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	expectedFirst := filepath.Join(xdg.ConfigHome, "spindle", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}

	// Local config.toml has highest priority (last wins)
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[len(paths)-1], "config.toml")
	}
}

func TestLoadDefaults(t *testing.T) {
	// No config file in a fresh temp dir
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MusicFolder != "" {
		t.Errorf("MusicFolder = %q, want empty (use cwd)", cfg.MusicFolder)
	}
	if cfg.SeekStepSeconds != 5 {
		t.Errorf("SeekStepSeconds = %d, want 5", cfg.SeekStepSeconds)
	}
	if !cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = false, want true by default")
	}
	if cfg.AdvancePolicy() != playback.AdvancePlay {
		t.Errorf("AdvancePolicy() = %v, want AdvancePlay", cfg.AdvancePolicy())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
music_folder = "/srv/music"
seek_step_seconds = 10
notifications = false

[playback]
advance = "pause"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MusicFolder != "/srv/music" {
		t.Errorf("MusicFolder = %q, want /srv/music", cfg.MusicFolder)
	}
	if cfg.SeekStepSeconds != 10 {
		t.Errorf("SeekStepSeconds = %d, want 10", cfg.SeekStepSeconds)
	}
	if cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = true, want false")
	}
	if cfg.AdvancePolicy() != playback.AdvancePause {
		t.Errorf("AdvancePolicy() = %v, want AdvancePause", cfg.AdvancePolicy())
	}
}

func TestLoadExpandsMusicFolder(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	dir := t.TempDir()
	content := `music_folder = "~/music"`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if want := filepath.Join(home, "music"); cfg.MusicFolder != want {
		t.Errorf("MusicFolder = %q, want %q", cfg.MusicFolder, want)
	}
}

func TestLoadRejectsBadAdvance(t *testing.T) {
	dir := t.TempDir()
	content := `
[playback]
advance = "repeat"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded, want error for invalid playback.advance")
	}
	if !strings.Contains(err.Error(), "playback.advance") {
		t.Errorf("error %q does not mention playback.advance", err)
	}
}

func TestAdvancePolicyMapping(t *testing.T) {
	tests := []struct {
		value    string
		expected playback.AdvancePolicy
	}{
		{"", playback.AdvancePlay},
		{"play", playback.AdvancePlay},
		{"pause", playback.AdvancePause},
	}
	for _, tt := range tests {
		cfg := Config{Playback: PlaybackConfig{Advance: tt.value}}
		if got := cfg.AdvancePolicy(); got != tt.expected {
			t.Errorf("AdvancePolicy(%q) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}
