package pomodoro

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00"},
		{"seconds only", 42 * time.Second, "00:42"},
		{"minutes and seconds", 24*time.Minute + 59*time.Second, "24:59"},
		{"whole minutes", 25 * time.Minute, "25:00"},
		{"over an hour", 90 * time.Minute, "90:00"},
		{"negative clamped", -time.Second, "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRemaining(tt.d); got != tt.want {
				t.Errorf("formatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestCountdownCompletes(t *testing.T) {
	m := newModel(2 * time.Second)

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(model)
	if m.done {
		t.Fatal("done after one tick of two")
	}
	if cmd == nil {
		t.Fatal("expected another tick to be scheduled")
	}

	next, cmd = m.Update(tickMsg(time.Now()))
	m = next.(model)
	if !m.done {
		t.Error("timer should be done after final tick")
	}
	if m.remaining != 0 {
		t.Errorf("remaining = %v, want 0", m.remaining)
	}
	if cmd == nil {
		t.Error("expected quit command after final tick")
	}
}
