package playback

import "testing"

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "Idle"},
		{StatusPaused, "Paused"},
		{StatusPlaying, "Playing"},
		{Status(99), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusIsActive(t *testing.T) {
	if StatusIdle.IsActive() {
		t.Error("Idle.IsActive() = true, want false")
	}
	if !StatusPaused.IsActive() {
		t.Error("Paused.IsActive() = false, want true")
	}
	if !StatusPlaying.IsActive() {
		t.Error("Playing.IsActive() = false, want true")
	}
}

func TestAdvancePolicyString(t *testing.T) {
	if got := AdvancePlay.String(); got != "Play" {
		t.Errorf("AdvancePlay.String() = %q, want %q", got, "Play")
	}
	if got := AdvancePause.String(); got != "Pause" {
		t.Errorf("AdvancePause.String() = %q, want %q", got, "Pause")
	}
}
