package app

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/errmsg"
	"github.com/llehouerou/spindle/internal/notify"
	"github.com/llehouerou/spindle/internal/permission"
	"github.com/llehouerou/spindle/internal/player"
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/ui/playerbar"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PlaybackMessage:
		return m.updatePlayback(msg)

	case StderrMsg:
		m.ErrorMsg = msg.Line
		return m, WatchStderr()
	}

	if m.Focus == FocusPicker {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if m.Focus == FocusPicker {
		if msg.String() == "esc" {
			m.Focus = FocusQueue
			m.QueuePanel.SetFocused(true)
			return m, nil
		}
		return m.updatePicker(msg)
	}

	return m.handleQueueKey(msg)
}

func (m Model) handleQueueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return m.openPicker()
	case " ":
		m.Controller.TogglePlayPause()
		m.resizeComponents()
	case "n", "pgdown":
		m.Controller.Next()
	case "p", "pgup":
		m.Controller.Previous()
	case "left", "h":
		m.Controller.SeekBy(-m.SeekStep)
	case "right", "l":
		m.Controller.SeekBy(m.SeekStep)
	case "j", "down":
		m.QueuePanel.CursorDown()
	case "k", "up":
		m.QueuePanel.CursorUp()
	case "g", "home":
		m.QueuePanel.CursorHome()
	case "G", "end":
		m.QueuePanel.CursorEnd()
	case "enter":
		if idx := m.QueuePanel.Cursor(); idx >= 0 {
			m.Controller.PlayAt(idx)
		}
	case "d", "delete":
		return m.removeAtCursor()
	case "J", "shift+down":
		m.moveCursorTrack(1)
	case "K", "shift+up":
		m.moveCursorTrack(-1)
	}
	return m, nil
}

// openPicker opens the file picker after the storage gate admits the
// music folder. Denied access is reported and the picker stays closed.
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	if err := m.Gate.Check(m.MusicFolder); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpFolderOpen, m.MusicFolder, err)
		if errors.Is(err, permission.ErrDenied) {
			return m, m.notifyCmd(notify.Notification{
				Title:   "Access denied",
				Body:    "Cannot read " + m.MusicFolder,
				Urgency: notify.UrgencyCritical,
				Timeout: -1,
			})
		}
		return m, nil
	}

	m.Focus = FocusPicker
	m.QueuePanel.SetFocused(false)
	m.Picker.CurrentDirectory = m.MusicFolder
	m.resizeComponents()
	return m, m.Picker.Init()
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)

	if didSelect, path := m.Picker.DidSelectFile(msg); didSelect {
		return m.addTrack(path, cmd)
	}
	if didSelect, path := m.Picker.DidSelectDisabledFile(msg); didSelect {
		m.ErrorMsg = path + " is not an audio file"
	}
	return m, cmd
}

// addTrack appends the picked file to the playlist. Tag reading falls
// back to the file name, so a missing tag never blocks adding.
func (m Model) addTrack(path string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	info, err := player.ReadTrackInfo(path)
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpFileLoad, path, err)
		return m, cmd
	}

	track := playlist.Track{
		Path:     path,
		Title:    info.Title,
		Artist:   info.Artist,
		Album:    info.Album,
		Duration: info.Duration,
	}
	if fi, err := os.Stat(path); err == nil {
		track.Size = fi.Size()
	}

	m.Controller.Append(track)
	m.syncQueue()
	return m, cmd
}

func (m Model) removeAtCursor() (tea.Model, tea.Cmd) {
	idx := m.QueuePanel.Cursor()
	if idx < 0 {
		return m, nil
	}

	wasCurrent := idx == m.Controller.CurrentIndex()
	var title string
	if t := m.Controller.CurrentTrack(); wasCurrent && t != nil {
		title = t.Title
	}

	if err := m.Controller.RemoveAt(idx); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpPlaylistRemove, err)
		return m, nil
	}
	m.syncQueue()
	m.resizeComponents()

	if wasCurrent {
		return m, m.notifyCmd(notify.Notification{
			Title:   "Track removed",
			Body:    title,
			Urgency: notify.UrgencyNormal,
			Timeout: 3000,
		})
	}
	return m, nil
}

// moveCursorTrack moves the track under the cursor one row up or down;
// the cursor follows the track.
func (m *Model) moveCursorTrack(delta int) {
	from := m.QueuePanel.Cursor()
	to := from + delta
	if from < 0 || to < 0 || to >= m.QueuePanel.Len() {
		return
	}
	if err := m.Controller.Move(from, to); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpPlaylistMove, err)
		return
	}
	m.syncQueue()
	if delta > 0 {
		m.QueuePanel.CursorDown()
	} else {
		m.QueuePanel.CursorUp()
	}
}

func (m Model) updatePlayback(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, TickCmd()

	case ServiceStateChangedMsg:
		m.resizeComponents()
		return m, m.WatchServiceEvents()

	case ServiceTrackChangedMsg:
		m.syncQueue()
		m.QueuePanel.FollowCurrent()
		m.ErrorMsg = ""
		cmds := []tea.Cmd{m.WatchServiceEvents()}
		if msg.Title != "" {
			cmds = append(cmds, m.notifyCmd(notify.Notification{
				Title:   msg.Title,
				Body:    msg.Artist,
				Urgency: notify.UrgencyLow,
				Timeout: 3000,
			}))
		}
		return m, tea.Batch(cmds...)

	case ServiceQueueChangedMsg:
		m.syncQueue()
		return m, m.WatchServiceEvents()

	case ServicePositionChangedMsg:
		return m, m.WatchServiceEvents()

	case ServiceErrorMsg:
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, msg.Path, msg.Err)
		return m, tea.Batch(
			m.WatchServiceEvents(),
			m.notifyCmd(notify.Notification{
				Title:   "Track unplayable",
				Body:    msg.Path,
				Urgency: notify.UrgencyNormal,
				Timeout: 5000,
			}),
		)

	case ServiceClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

// syncQueue refreshes the queue panel from the controller snapshot.
func (m *Model) syncQueue() {
	snap := m.Controller.Snapshot()
	m.QueuePanel.SetQueue(snap.Tracks, snap.CurrentIndex)
}

// resizeComponents distributes the window height between the active
// panel and the player bar.
func (m *Model) resizeComponents() {
	contentHeight := m.Height
	if m.Controller != nil && m.Controller.Status().IsActive() {
		contentHeight -= playerbar.Height
	}
	if m.ErrorMsg != "" {
		contentHeight--
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	m.QueuePanel.SetSize(m.Width, contentHeight)
	m.Picker.Height = max(contentHeight-2, 0)
}

// notifyCmd sends a desktop notification off the update loop.
// No-op when notifications are disabled.
func (m Model) notifyCmd(n notify.Notification) tea.Cmd {
	if !m.Notify || m.Notifier == nil {
		return nil
	}
	notifier := m.Notifier
	return func() tea.Msg {
		_, _ = notifier.Notify(n)
		return nil
	}
}
