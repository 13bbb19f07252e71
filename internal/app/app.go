// Package app contains the root bubbletea model wiring the playback
// controller, the file picker and the rendered panels together.
package app

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/config"
	"github.com/llehouerou/spindle/internal/notify"
	"github.com/llehouerou/spindle/internal/permission"
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/player"
	"github.com/llehouerou/spindle/internal/ui/queuepanel"
)

// FocusTarget identifies which component receives key input.
type FocusTarget int

const (
	FocusQueue FocusTarget = iota
	FocusPicker
)

// Model is the root application model containing all state.
type Model struct {
	Controller  *playback.Controller
	Gate        permission.Gate
	Notifier    notify.Notifier
	MusicFolder string

	Picker     filepicker.Model
	QueuePanel queuepanel.Model
	Focus      FocusTarget

	ErrorMsg string
	SeekStep time.Duration
	Notify   bool

	Width  int
	Height int

	playbackSub *playback.Subscription
}

// New creates the application model from configuration and collaborators.
func New(
	cfg *config.Config,
	controller *playback.Controller,
	gate permission.Gate,
	notifier notify.Notifier,
) (Model, error) {
	folder := cfg.MusicFolder
	if folder == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Model{}, err
		}
		folder = cwd
	}

	fp := filepicker.New()
	fp.AllowedTypes = player.AudioExtensions()
	fp.CurrentDirectory = folder
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false

	return Model{
		Controller:  controller,
		Gate:        gate,
		Notifier:    notifier,
		MusicFolder: folder,
		Picker:      fp,
		QueuePanel:  queuepanel.New(),
		Focus:       FocusQueue,
		SeekStep:    time.Duration(cfg.SeekStepSeconds) * time.Second,
		Notify:      cfg.NotificationsEnabled(),
		playbackSub: controller.Subscribe(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchServiceEvents(), WatchStderr(), TickCmd())
}
