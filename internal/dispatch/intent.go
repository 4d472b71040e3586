package dispatch

import (
	"fmt"

	"github.com/muurk/tuib/internal/display"
)

// Kind is the tag of an Intent.
type Kind int

const (
	Initialize Kind = iota
	Increment
	Decrement
	ScaleTo
	Reload
)

// Intent is a requested device mutation. Device, Property and Level are
// only meaningful for the kinds that use them.
type Intent struct {
	Kind     Kind
	Device   int
	Property display.Property
	Level    int
}

// InitializeIntent asks the worker to publish the initial registry.
func InitializeIntent() Intent {
	return Intent{Kind: Initialize}
}

// IncrementIntent raises p on the device at index by one step.
func IncrementIntent(index int, p display.Property) Intent {
	return Intent{Kind: Increment, Device: index, Property: p}
}

// DecrementIntent lowers p on the device at index by one step.
func DecrementIntent(index int, p display.Property) Intent {
	return Intent{Kind: Decrement, Device: index, Property: p}
}

// ScaleToIntent sets p on the device at index to display.ScaleValue(level).
func ScaleToIntent(index int, p display.Property, level int) Intent {
	return Intent{Kind: ScaleTo, Device: index, Property: p, Level: level}
}

// ReloadIntent asks the worker to re-enumerate outputs.
func ReloadIntent() Intent {
	return Intent{Kind: Reload}
}

// targetsDevice reports whether the intent addresses a single device.
func (i Intent) targetsDevice() bool {
	return i.Kind == Increment || i.Kind == Decrement || i.Kind == ScaleTo
}

func (i Intent) String() string {
	switch i.Kind {
	case Initialize:
		return "Initialize"
	case Increment:
		return fmt.Sprintf("Increment(%d, %s)", i.Device, i.Property)
	case Decrement:
		return fmt.Sprintf("Decrement(%d, %s)", i.Device, i.Property)
	case ScaleTo:
		return fmt.Sprintf("ScaleTo(%d, %s, %d)", i.Device, i.Property, i.Level)
	case Reload:
		return "Reload"
	default:
		return fmt.Sprintf("Intent(%d)", int(i.Kind))
	}
}
