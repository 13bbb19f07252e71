package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/spindle/internal/playback"
)

type Config struct {
	MusicFolder     string         `koanf:"music_folder"`      // empty means use cwd
	SeekStepSeconds int            `koanf:"seek_step_seconds"` // relative seek step (default: 5)
	Notifications   *bool          `koanf:"notifications"`     // desktop notifications (default: true)
	Playback        PlaybackConfig `koanf:"playback"`
}

// PlaybackConfig holds playback behavior settings.
type PlaybackConfig struct {
	Advance string `koanf:"advance"` // "play" or "pause" (default: "play")
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.MusicFolder != "" {
		cfg.MusicFolder = expandPath(cfg.MusicFolder)
	}
	if cfg.SeekStepSeconds <= 0 {
		cfg.SeekStepSeconds = 5
	}

	switch cfg.Playback.Advance {
	case "", "play", "pause":
	default:
		return nil, fmt.Errorf("config: playback.advance must be \"play\" or \"pause\", got %q", cfg.Playback.Advance)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{
		// 1. $XDG_CONFIG_HOME/spindle/config.toml
		filepath.Join(xdg.ConfigHome, "spindle", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// NotificationsEnabled returns true unless notifications are switched off.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// AdvancePolicy maps the playback.advance key to a controller policy.
func (c *Config) AdvancePolicy() playback.AdvancePolicy {
	if c.Playback.Advance == "pause" {
		return playback.AdvancePause
	}
	return playback.AdvancePlay
}
