package app

import (
	"context"
	"testing"

	"github.com/muurk/tuib/internal/dispatch"
	"github.com/muurk/tuib/internal/display"
)

// staticBackend implements display.Backend for testing
type staticBackend struct {
	outputs []string
}

func (b *staticBackend) Outputs(ctx context.Context) ([]string, error) {
	return b.outputs, nil
}

func (b *staticBackend) Apply(ctx context.Context, output string, settings display.Settings) error {
	return nil
}

func newRegistry(t *testing.T, names ...string) *display.Registry {
	t.Helper()
	reg, err := display.Enumerate(context.Background(), &staticBackend{outputs: names})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	return reg
}

func TestNewInitialized(t *testing.T) {
	s := NewInitialized(newRegistry(t, "A", "B"))

	if s.TabIndex != 0 {
		t.Errorf("expected tab 0, got %d", s.TabIndex)
	}
	if s.Focus != display.Brightness {
		t.Errorf("expected focus Brightness, got %s", s.Focus)
	}
	if s.DeviceCount != 2 {
		t.Errorf("expected 2 devices, got %d", s.DeviceCount)
	}
}

func TestInitialized_TabCycling(t *testing.T) {
	tests := []struct {
		name    string
		devices int
		start   int
		right   int
		left    int
	}{
		{"first of two", 2, 0, 1, 2},
		{"last device", 2, 1, 2, 0},
		{"diagnostics wraps", 2, 2, 0, 1},
		{"no devices", 0, 0, 0, 0},
		{"single device", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Initialized{TabIndex: tt.start, DeviceCount: tt.devices}
			s.TabRight()
			if s.TabIndex != tt.right {
				t.Errorf("TabRight: expected %d, got %d", tt.right, s.TabIndex)
			}

			s.TabIndex = tt.start
			s.TabLeft()
			if s.TabIndex != tt.left {
				t.Errorf("TabLeft: expected %d, got %d", tt.left, s.TabIndex)
			}
		})
	}
}

func TestInitialized_TabRoundTrip(t *testing.T) {
	s := &Initialized{DeviceCount: 3}
	for i := 0; i < s.DeviceCount+1; i++ {
		s.TabRight()
	}
	if s.TabIndex != 0 {
		t.Errorf("expected full cycle to return to 0, got %d", s.TabIndex)
	}
}

func TestInitialized_FocusCycling(t *testing.T) {
	s := &Initialized{DeviceCount: 1, Focus: display.Brightness}

	want := []display.Property{display.Red, display.Green, display.Blue, display.Brightness}
	for _, p := range want {
		s.NextProperty()
		if s.Focus != p {
			t.Errorf("NextProperty: expected %s, got %s", p, s.Focus)
		}
	}

	s.PrevProperty()
	if s.Focus != display.Blue {
		t.Errorf("PrevProperty: expected Blue, got %s", s.Focus)
	}
}

func TestInitialized_Intents(t *testing.T) {
	s := &Initialized{TabIndex: 1, DeviceCount: 2, Focus: display.Green}

	intent, ok := s.MoveRight()
	if !ok || intent != dispatch.IncrementIntent(1, display.Green) {
		t.Errorf("MoveRight: expected Increment(1, Green), got %s (%v)", intent, ok)
	}
	intent, ok = s.MoveLeft()
	if !ok || intent != dispatch.DecrementIntent(1, display.Green) {
		t.Errorf("MoveLeft: expected Decrement(1, Green), got %s (%v)", intent, ok)
	}
	intent, ok = s.ScaleIntent(4)
	if !ok || intent != dispatch.ScaleToIntent(1, display.Green, 4) {
		t.Errorf("ScaleIntent: expected ScaleTo(1, Green, 4), got %s (%v)", intent, ok)
	}
}

func TestInitialized_NoIntentOnDiagnostics(t *testing.T) {
	for _, devices := range []int{0, 2} {
		s := &Initialized{TabIndex: devices, DeviceCount: devices}
		if !s.OnDiagnostics() {
			t.Fatalf("expected diagnostics tab with %d devices", devices)
		}
		if _, ok := s.MoveRight(); ok {
			t.Errorf("expected no MoveRight intent with %d devices", devices)
		}
		if _, ok := s.MoveLeft(); ok {
			t.Errorf("expected no MoveLeft intent with %d devices", devices)
		}
		if _, ok := s.ScaleIntent(5); ok {
			t.Errorf("expected no ScaleIntent with %d devices", devices)
		}
	}
}

func TestInitialized_ReplaceRegistry(t *testing.T) {
	tests := []struct {
		name    string
		before  int
		tab     int
		after   int
		wantTab int
	}{
		{"device kept", 3, 1, 3, 1},
		{"tab clamped", 3, 2, 1, 1},
		{"diagnostics kept", 2, 2, 4, 4},
		{"diagnostics shrinks", 3, 3, 1, 1},
		{"all gone", 2, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := []string{"A", "B", "C", "D"}
			s := NewInitialized(newRegistry(t, names[:tt.before]...))
			s.TabIndex = tt.tab

			s.replaceRegistry(newRegistry(t, names[:tt.after]...))

			if s.DeviceCount != tt.after {
				t.Errorf("expected %d devices, got %d", tt.after, s.DeviceCount)
			}
			if s.TabIndex != tt.wantTab {
				t.Errorf("expected tab %d, got %d", tt.wantTab, s.TabIndex)
			}
		})
	}
}
