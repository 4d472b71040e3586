package display

// Property identifies one adjustable value of a Device.
type Property int

const (
	Brightness Property = iota
	Red
	Green
	Blue
)

// Properties lists every Property in focus order.
var Properties = []Property{Brightness, Red, Green, Blue}

// Next returns the following property, wrapping from Blue to Brightness.
func (p Property) Next() Property {
	switch p {
	case Brightness:
		return Red
	case Red:
		return Green
	case Green:
		return Blue
	default:
		return Brightness
	}
}

// Prev returns the preceding property, wrapping from Brightness to Blue.
func (p Property) Prev() Property {
	switch p {
	case Brightness:
		return Blue
	case Red:
		return Brightness
	case Green:
		return Red
	default:
		return Green
	}
}

func (p Property) String() string {
	switch p {
	case Brightness:
		return "Brightness"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the four known properties.
func (p Property) Valid() bool {
	return p >= Brightness && p <= Blue
}
