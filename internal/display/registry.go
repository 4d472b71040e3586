package display

import (
	"context"
	"fmt"
	"strings"
)

// Registry is the ordered set of devices found by one enumeration pass.
type Registry struct {
	backend Backend
	step    int
	devices []Device
}

// Option configures a Registry.
type Option func(*Registry)

// WithStep sets the increment/decrement magnitude. Values below 1 are ignored.
func WithStep(step int) Option {
	return func(r *Registry) {
		if step >= 1 {
			r.step = step
		}
	}
}

// Enumerate queries the backend for connected outputs and returns a registry
// with every device at the default baseline. An empty output list yields an
// empty registry, not an error.
func Enumerate(ctx context.Context, backend Backend, opts ...Option) (*Registry, error) {
	r := &Registry{
		backend: backend,
		step:    1,
	}
	for _, opt := range opts {
		opt(r)
	}

	devices, err := r.enumerate(ctx)
	if err != nil {
		return nil, err
	}
	r.devices = devices
	return r, nil
}

func (r *Registry) enumerate(ctx context.Context) ([]Device, error) {
	names, err := r.backend.Outputs(ctx)
	if err != nil {
		return nil, &EnumerateError{Err: err}
	}

	devices := make([]Device, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		devices = append(devices, NewDevice(name))
	}
	return devices, nil
}

// Len returns the number of devices.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.devices)
}

// Step returns the increment/decrement magnitude.
func (r *Registry) Step() int {
	return r.step
}

// Device returns the device at index.
func (r *Registry) Device(index int) (Device, bool) {
	if r == nil || index < 0 || index >= len(r.devices) {
		return Device{}, false
	}
	return r.devices[index], true
}

// Devices returns a copy of all devices in index order.
func (r *Registry) Devices() []Device {
	if r == nil {
		return nil
	}
	out := make([]Device, len(r.devices))
	copy(out, r.devices)
	return out
}

// Names returns the device names in index order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.devices))
	for i, d := range r.devices {
		names[i] = d.Name
	}
	return names
}

// Apply clamps value, applies it through the backend and, only if that
// succeeds, stores it on the device.
func (r *Registry) Apply(ctx context.Context, index int, p Property, value int) error {
	current, ok := r.Device(index)
	if !ok {
		return fmt.Errorf("%w %d (have %d)", ErrNoDevice, index, r.Len())
	}
	if !p.Valid() {
		return fmt.Errorf("unknown property %d", int(p))
	}

	next := current.With(p, value)
	if err := r.backend.Apply(ctx, next.Name, next.Settings()); err != nil {
		return &ApplyError{
			Device:   current.Name,
			Property: p,
			Value:    next.Value(p),
			Err:      err,
		}
	}

	r.devices[index] = next
	return nil
}

// Increment raises p of the device at index by one step.
func (r *Registry) Increment(ctx context.Context, index int, p Property) error {
	current, ok := r.Device(index)
	if !ok {
		return fmt.Errorf("%w %d (have %d)", ErrNoDevice, index, r.Len())
	}
	return r.Apply(ctx, index, p, current.Value(p)+r.step)
}

// Decrement lowers p of the device at index by one step. The arithmetic is
// done in int so the lower bound clamps to MinValue instead of wrapping.
func (r *Registry) Decrement(ctx context.Context, index int, p Property) error {
	current, ok := r.Device(index)
	if !ok {
		return fmt.Errorf("%w %d (have %d)", ErrNoDevice, index, r.Len())
	}
	return r.Apply(ctx, index, p, current.Value(p)-r.step)
}

// ScaleTo sets p of the device at index to ScaleValue(level).
func (r *Registry) ScaleTo(ctx context.Context, index int, p Property, level int) error {
	return r.Apply(ctx, index, p, ScaleValue(level))
}

// Reload re-enumerates the backend and replaces the whole device list.
// Indices held by callers must be revalidated against Len afterwards.
// On failure the current devices are kept.
func (r *Registry) Reload(ctx context.Context) error {
	devices, err := r.enumerate(ctx)
	if err != nil {
		return err
	}
	r.devices = devices
	return nil
}

// Clone returns a deep copy sharing the same backend.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return nil
	}
	return &Registry{
		backend: r.backend,
		step:    r.step,
		devices: r.Devices(),
	}
}
