package display

import (
	"context"
	"errors"
	"fmt"
)

// Settings is what a backend applies to a single output in one call.
// Both fields are ratios formatted for xrandr.
type Settings struct {
	Brightness string
	Gamma      string
}

// Backend talks to the display-configuration utility. Calls are
// synchronous and individually fallible; no retries are attempted.
type Backend interface {
	// Outputs lists the names of the currently connected outputs.
	Outputs(ctx context.Context) ([]string, error)
	// Apply sets brightness and gamma of the named output.
	Apply(ctx context.Context, output string, settings Settings) error
}

// ErrNoDevice is returned for an index that does not address a device.
var ErrNoDevice = errors.New("no device at index")

// ApplyError reports a backend failure for one device/property change.
// The in-memory value is left unchanged when it is returned.
type ApplyError struct {
	Device   string
	Property Property
	Value    int
	Err      error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("failed to set %s of %s to %d: %v", e.Property, e.Device, e.Value, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// EnumerateError reports that the backend could not list outputs.
type EnumerateError struct {
	Err error
}

func (e *EnumerateError) Error() string {
	return fmt.Sprintf("failed to enumerate outputs: %v", e.Err)
}

func (e *EnumerateError) Unwrap() error {
	return e.Err
}
