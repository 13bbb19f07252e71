package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/stderr"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchServiceEvents returns a command that waits for controller events.
// It listens on all subscription channels and converts events to tea.Msg.
// The Update handler re-issues it after each received message.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.playbackSub == nil {
		return nil
	}
	sub := m.playbackSub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.TrackChanged:
			msg := ServiceTrackChangedMsg{
				PreviousIndex: e.PreviousIndex,
				Index:         e.Index,
			}
			if e.Current != nil {
				msg.Title = e.Current.Title
				msg.Artist = e.Current.Artist
			}
			return msg
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg{Index: e.Index}
		case e := <-sub.PositionChanged:
			return ServicePositionChangedMsg{Position: e.Position}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Path: e.Path, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}
