package tui

import (
	"fmt"
	"strings"
)

// SizeError reports a terminal too small for the layout.
type SizeError struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("terminal size %dx%d is too small, need at least %dx%d",
		e.Width, e.Height, e.MinWidth, e.MinHeight)
}

// CheckSize returns a *SizeError when width or height is below the minimum.
func CheckSize(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return &SizeError{
			Width:     width,
			Height:    height,
			MinWidth:  MinWidth,
			MinHeight: MinHeight,
		}
	}
	return nil
}

// renderSizeError draws err in a box that fits inside width.
func renderSizeError(err error, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	lines := []string{
		ErrorTitleStyle.Render("Terminal too small"),
		ErrorMessageStyle.Render(err.Error()),
	}
	return ErrorBoxStyle(inner).Render(strings.Join(lines, "\n"))
}
