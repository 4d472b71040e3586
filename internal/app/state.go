package app

import (
	"github.com/muurk/tuib/internal/dispatch"
	"github.com/muurk/tuib/internal/display"
)

// State is either Uninitialized or *Initialized.
type State interface {
	isState()
}

// Uninitialized is the state before the device registry has been published.
type Uninitialized struct{}

func (Uninitialized) isState() {}

// Initialized is the navigable state.
type Initialized struct {
	// TabIndex is in [0, DeviceCount]; DeviceCount is the diagnostics tab.
	TabIndex int
	// Focus is the property row the move actions apply to.
	Focus display.Property
	// DeviceCount is the number of device tabs.
	DeviceCount int
	// Registry is the latest published snapshot. It must not be mutated.
	Registry *display.Registry
}

func (*Initialized) isState() {}

// NewInitialized returns the state right after initialization.
func NewInitialized(registry *display.Registry) *Initialized {
	return &Initialized{
		TabIndex:    0,
		Focus:       display.Brightness,
		DeviceCount: registry.Len(),
		Registry:    registry,
	}
}

// OnDiagnostics reports whether the diagnostics tab is selected.
func (s *Initialized) OnDiagnostics() bool {
	return s.TabIndex >= s.DeviceCount
}

// TabRight selects the next tab, wrapping after the diagnostics tab.
func (s *Initialized) TabRight() {
	s.TabIndex = (s.TabIndex + 1) % (s.DeviceCount + 1)
}

// TabLeft selects the previous tab, wrapping to the diagnostics tab.
func (s *Initialized) TabLeft() {
	if s.TabIndex == 0 {
		s.TabIndex = s.DeviceCount
		return
	}
	s.TabIndex--
}

// NextProperty moves focus to the next property row.
func (s *Initialized) NextProperty() {
	s.Focus = s.Focus.Next()
}

// PrevProperty moves focus to the previous property row.
func (s *Initialized) PrevProperty() {
	s.Focus = s.Focus.Prev()
}

// MoveRight returns an Increment intent for the focused device property.
// There is none on the diagnostics tab.
func (s *Initialized) MoveRight() (dispatch.Intent, bool) {
	if s.OnDiagnostics() {
		return dispatch.Intent{}, false
	}
	return dispatch.IncrementIntent(s.TabIndex, s.Focus), true
}

// MoveLeft returns a Decrement intent for the focused device property.
// There is none on the diagnostics tab.
func (s *Initialized) MoveLeft() (dispatch.Intent, bool) {
	if s.OnDiagnostics() {
		return dispatch.Intent{}, false
	}
	return dispatch.DecrementIntent(s.TabIndex, s.Focus), true
}

// ScaleIntent returns a ScaleTo intent for the focused device property.
// There is none on the diagnostics tab.
func (s *Initialized) ScaleIntent(level int) (dispatch.Intent, bool) {
	if s.OnDiagnostics() {
		return dispatch.Intent{}, false
	}
	return dispatch.ScaleToIntent(s.TabIndex, s.Focus, level), true
}

// replaceRegistry swaps in a snapshot with a possibly different device
// count, keeping the tab index clamped to the new range. The diagnostics
// tab stays selected if it was.
func (s *Initialized) replaceRegistry(registry *display.Registry) {
	onDiagnostics := s.OnDiagnostics()
	s.Registry = registry
	s.DeviceCount = registry.Len()
	if onDiagnostics || s.TabIndex > s.DeviceCount {
		s.TabIndex = s.DeviceCount
	}
}
