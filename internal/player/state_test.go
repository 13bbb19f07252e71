package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	if Stopped.IsActive() {
		t.Error("Stopped.IsActive() = true, want false")
	}
	if !Playing.IsActive() {
		t.Error("Playing.IsActive() = false, want true")
	}
	if !Paused.IsActive() {
		t.Error("Paused.IsActive() = false, want true")
	}
}

func TestState_CanPauseResume(t *testing.T) {
	if !Playing.CanPause() {
		t.Error("Playing.CanPause() = false, want true")
	}
	if Paused.CanPause() {
		t.Error("Paused.CanPause() = true, want false")
	}
	if !Paused.CanResume() {
		t.Error("Paused.CanResume() = false, want true")
	}
	if Stopped.CanResume() {
		t.Error("Stopped.CanResume() = true, want false")
	}
}

func TestMock_StateTransitions(t *testing.T) {
	m := NewMock()

	if m.State() != Stopped {
		t.Fatalf("initial State() = %v, want Stopped", m.State())
	}

	if err := m.Load("/a.mp3"); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.State() != Paused {
		t.Errorf("State() after Load = %v, want Paused", m.State())
	}

	m.Play()
	if m.State() != Playing {
		t.Errorf("State() after Play = %v, want Playing", m.State())
	}

	m.Toggle()
	if m.State() != Paused {
		t.Errorf("State() after Toggle = %v, want Paused", m.State())
	}

	m.Stop()
	if m.State() != Stopped {
		t.Errorf("State() after Stop = %v, want Stopped", m.State())
	}
	if m.TrackInfo() != nil {
		t.Error("TrackInfo() after Stop should be nil")
	}
}

func TestMock_PlayIgnoredWhenStopped(t *testing.T) {
	m := NewMock()

	m.Play()

	if m.State() != Stopped {
		t.Errorf("State() = %v, want Stopped (Play with nothing loaded)", m.State())
	}
}
