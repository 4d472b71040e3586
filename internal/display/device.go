package display

import (
	"strconv"
)

// Value bounds shared by brightness and every gamma channel.
const (
	MinValue     = 1
	MaxValue     = 100
	DefaultValue = 100
)

// Gamma holds the per-channel gamma percentages of an output.
type Gamma struct {
	R int
	G int
	B int
}

// String renders the triple in the xrandr --gamma form ("1.00:0.80:1.00").
func (g Gamma) String() string {
	return ratio(g.R) + ":" + ratio(g.G) + ":" + ratio(g.B)
}

// Device is one physical output.
type Device struct {
	Name       string
	Brightness int
	Gamma      Gamma
}

// NewDevice returns a device at the default baseline (100% everywhere).
func NewDevice(name string) Device {
	return Device{
		Name:       name,
		Brightness: DefaultValue,
		Gamma:      Gamma{R: DefaultValue, G: DefaultValue, B: DefaultValue},
	}
}

// Value returns the current value of p.
func (d Device) Value(p Property) int {
	switch p {
	case Red:
		return d.Gamma.R
	case Green:
		return d.Gamma.G
	case Blue:
		return d.Gamma.B
	default:
		return d.Brightness
	}
}

// With returns a copy of d with p set to the clamped value.
func (d Device) With(p Property, value int) Device {
	value = Clamp(value)
	switch p {
	case Red:
		d.Gamma.R = value
	case Green:
		d.Gamma.G = value
	case Blue:
		d.Gamma.B = value
	default:
		d.Brightness = value
	}
	return d
}

// Settings is the full backend setting for this device.
func (d Device) Settings() Settings {
	return Settings{
		Brightness: ratio(d.Brightness),
		Gamma:      d.Gamma.String(),
	}
}

// Clamp limits v to [MinValue, MaxValue].
func Clamp(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// ScaleValue maps a scale level to a percentage: 1..10 become 10..100,
// 0 and anything out of range reset to 100.
func ScaleValue(level int) int {
	if level < 1 || level > 10 {
		return DefaultValue
	}
	return level * 10
}

func ratio(percent int) string {
	return strconv.FormatFloat(float64(percent)/100, 'f', 2, 64)
}
