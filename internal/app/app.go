package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/tuib/internal/dispatch"
	"github.com/muurk/tuib/internal/display"
	"github.com/muurk/tuib/internal/keymap"
)

// Dispatcher enqueues intents for the worker. *dispatch.Queue satisfies it.
type Dispatcher interface {
	Send(intent dispatch.Intent) error
}

// Result tells the render loop whether to keep running.
type Result int

const (
	Continue Result = iota
	Exit
)

// Event is one input for the render loop: a key symbol, or a tick when Key
// is empty.
type Event struct {
	Key string
}

// KeyEvent returns the event for a key symbol.
func KeyEvent(symbol string) Event {
	return Event{Key: symbol}
}

// TickEvent returns a timer event.
func TickEvent() Event {
	return Event{}
}

// IsTick reports whether e carries no key.
func (e Event) IsTick() bool {
	return e.Key == ""
}

// Snapshot is a read-only copy of everything a frame needs.
type Snapshot struct {
	Initialized bool
	TabIndex    int
	DeviceCount int
	Focus       display.Property
	Devices     []display.Device
	Busy        bool
	Keys        *keymap.Table
}

// OnDiagnostics reports whether the diagnostics tab is selected.
func (s Snapshot) OnDiagnostics() bool {
	return s.Initialized && s.TabIndex >= s.DeviceCount
}

// Option configures an App.
type Option func(*App)

// WithKeyOverrides replaces default keys by action name.
func WithKeyOverrides(overrides map[string][]string) Option {
	return func(a *App) {
		a.overrides = overrides
	}
}

// App is the state shared between the render loop and the worker.
type App struct {
	mu         sync.Mutex
	dispatcher Dispatcher
	logger     *zap.Logger
	overrides  map[string][]string

	actions *keymap.Table
	full    *keymap.Table
	state   State
	busy    bool
}

// New creates an uninitialized App. Both the base and the full keymap are
// built here so that conflicting bindings abort startup.
func New(dispatcher Dispatcher, logger *zap.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		dispatcher: dispatcher,
		logger:     logger,
		state:      Uninitialized{},
	}
	for _, opt := range opts {
		opt(a)
	}

	base, err := keymap.Build(keymap.BaseActions(), keymap.WithOverrides(a.overrides))
	if err != nil {
		return nil, fmt.Errorf("invalid keybindings: %w", err)
	}
	full, err := keymap.Build(keymap.FullActions(), keymap.WithOverrides(a.overrides))
	if err != nil {
		return nil, fmt.Errorf("invalid keybindings: %w", err)
	}
	a.actions = base
	a.full = full
	return a, nil
}

// Step applies at most one transition for ev and returns the frame to draw.
// The lock is taken once for both.
func (a *App) Step(ev Event) (Result, Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := Continue
	if !ev.IsTick() {
		result = a.handleKeyLocked(ev.Key)
	}
	return result, a.snapshotLocked()
}

// Snapshot returns the current frame data.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *App) handleKeyLocked(symbol string) Result {
	action, ok := a.actions.Resolve(symbol)
	if !ok {
		a.logger.Debug("no action associated to key", zap.String("key", symbol))
		return Continue
	}
	a.logger.Debug("run action", zap.Stringer("action", action))

	if action.Kind == keymap.Quit {
		return Exit
	}

	s, ok := a.state.(*Initialized)
	if !ok {
		return Continue
	}

	switch action.Kind {
	case keymap.MoveUp:
		s.PrevProperty()
	case keymap.MoveDown:
		s.NextProperty()
	case keymap.TabRight:
		s.TabRight()
	case keymap.TabLeft:
		s.TabLeft()
	case keymap.MoveRight:
		if intent, ok := s.MoveRight(); ok {
			_ = a.dispatchLocked(intent)
		}
	case keymap.MoveLeft:
		if intent, ok := s.MoveLeft(); ok {
			_ = a.dispatchLocked(intent)
		}
	case keymap.Scale:
		if intent, ok := s.ScaleIntent(action.Level); ok {
			_ = a.dispatchLocked(intent)
		}
	case keymap.Reload:
		_ = a.dispatchLocked(dispatch.ReloadIntent())
	}
	return Continue
}

// Dispatch marks the app busy and enqueues intent. If the queue refuses it
// the busy flag is cleared again and the error is logged and returned.
func (a *App) Dispatch(intent dispatch.Intent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchLocked(intent)
}

func (a *App) dispatchLocked(intent dispatch.Intent) error {
	a.busy = true
	if err := a.dispatcher.Send(intent); err != nil {
		a.busy = false
		a.logger.Error("error from dispatch",
			zap.Stringer("intent", intent),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Initialize moves to the Initialized state with registry as the first
// snapshot and enables the full action set. On an already initialized app
// it behaves like Reload.
func (a *App) Initialize(registry *display.Registry) error {
	if registry == nil {
		return fmt.Errorf("initialize: nil registry")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.state.(*Initialized); ok {
		s.replaceRegistry(registry)
		return nil
	}

	a.actions = a.full
	a.state = NewInitialized(registry)
	a.logger.Info("application initialized", zap.Int("devices", registry.Len()))
	return nil
}

// SetRegistry publishes a new registry snapshot after a device change.
func (a *App) SetRegistry(registry *display.Registry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.state.(*Initialized); ok {
		s.Registry = registry
	}
}

// Reload publishes a re-enumerated registry. The tab index is preserved and
// clamped to the new device count.
func (a *App) Reload(registry *display.Registry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.state.(*Initialized); ok {
		s.replaceRegistry(registry)
	}
}

// Loaded clears the busy flag.
func (a *App) Loaded() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.busy = false
}

// Busy reports whether an intent is believed to be in flight. It is UI
// feedback only.
func (a *App) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// State returns a copy of the current state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.state.(*Initialized); ok {
		c := *s
		return &c
	}
	return Uninitialized{}
}

// Actions returns the active keymap table.
func (a *App) Actions() *keymap.Table {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.actions
}

func (a *App) snapshotLocked() Snapshot {
	snap := Snapshot{
		Busy: a.busy,
		Keys: a.actions,
	}
	if s, ok := a.state.(*Initialized); ok {
		snap.Initialized = true
		snap.TabIndex = s.TabIndex
		snap.DeviceCount = s.DeviceCount
		snap.Focus = s.Focus
		snap.Devices = s.Registry.Devices()
	}
	return snap
}

var _ dispatch.Sink = (*App)(nil)
