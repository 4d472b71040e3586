package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Application branding
const AppName = "TUIB"

// Minimum terminal size the layout fits in.
const (
	MinWidth  = 52
	MinHeight = 28
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple - borders, active tab
	SecondaryColor = lipgloss.Color("#43BF6D") // Green - focused row
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	GaugeLabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Width(12).
			PaddingLeft(2)

	FocusedGaugeLabelStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				Width(12)

	GaugeValueStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(6).
			Align(lipgloss.Right)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	logDebugStyle = lipgloss.NewStyle().Foreground(SubtleColor)
	logInfoStyle  = lipgloss.NewStyle().Foreground(TextColor)
	logWarnStyle  = lipgloss.NewStyle().Foreground(WarningColor)
	logErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor)
)

// Markers
const (
	FocusMarker = "›"
	TabDivider  = "│"
)

// PanelStyle returns the bordered frame around everything.
func PanelStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Height(height - 2)
}

// ErrorBoxStyle returns the border style for the size error box.
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width).
		Padding(0, 1)
}

// logLineStyle picks a color from the level column of a console-encoded
// zap entry.
func logLineStyle(line string) lipgloss.Style {
	fields := strings.SplitN(line, "\t", 3)
	level := ""
	if len(fields) > 1 {
		level = fields[1]
	}
	switch level {
	case "DEBUG":
		return logDebugStyle
	case "WARN":
		return logWarnStyle
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return logErrorStyle
	default:
		return logInfoStyle
	}
}
