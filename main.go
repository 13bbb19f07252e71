package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/app"
	"github.com/llehouerou/spindle/internal/config"
	"github.com/llehouerou/spindle/internal/notify"
	"github.com/llehouerou/spindle/internal/permission"
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/player"
	"github.com/llehouerou/spindle/internal/stderr"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Capture fd 2 before the audio backend initializes, so ALSA noise
	// doesn't corrupt the TUI.
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "stderr capture unavailable: %v\n", err)
	}
	defer stderr.Stop()

	notifier, err := notify.New()
	if err != nil {
		return fmt.Errorf("init notifications: %w", err)
	}

	transport := player.New()
	controller := playback.New(transport, cfg.AdvancePolicy())
	defer controller.Close()

	m, err := app.New(cfg, controller, permission.NewOS(), notifier)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error: %v\n", err))
		os.Exit(1)
	}
}
