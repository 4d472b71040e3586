package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuib/internal/display"
)

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if err := CheckSize(m.width, m.height); err != nil {
		return renderSizeError(err, m.width)
	}

	var body string
	switch {
	case !m.snap.Initialized:
		body = fmt.Sprintf("%s Loading outputs...", m.spinner.View())
	case m.snap.OnDiagnostics():
		body = m.renderDiagnostics()
	default:
		body = m.renderDevice(m.snap.Devices[m.snap.TabIndex])
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		"",
		body,
	)
	main = lipgloss.NewStyle().
		Height(m.height - 3).
		MaxHeight(m.height - 3).
		Render(main)

	footer := ""
	if m.snap.Keys != nil {
		footer = m.help.ShortHelpView(m.snap.Keys.ShortHelp())
	}

	return PanelStyle(m.width, m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, main, footer),
	)
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render(AppName)
	info := SubtitleStyle.Render(fmt.Sprintf("%d outputs", m.snap.DeviceCount))
	header := title + " " + info
	if m.snap.Busy {
		header += " " + m.spinner.View()
	}
	return header
}

func (m Model) renderTabs() string {
	if !m.snap.Initialized {
		return ""
	}

	names := make([]string, 0, len(m.snap.Devices)+1)
	for _, d := range m.snap.Devices {
		names = append(names, d.Name)
	}
	names = append(names, "Diagnostics")

	tabs := make([]string, len(names))
	for i, name := range names {
		if i == m.snap.TabIndex {
			tabs[i] = ActiveTabStyle.Render(name)
		} else {
			tabs[i] = TabStyle.Render(name)
		}
	}
	divider := lipgloss.NewStyle().Foreground(SubtleColor).Render(TabDivider)
	return lipgloss.NewStyle().
		MaxWidth(m.width - 4).
		Render(strings.Join(tabs, divider))
}

func (m Model) renderDevice(d display.Device) string {
	settings := d.Settings()
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render(d.Name),
		SubtitleStyle.Render(fmt.Sprintf("  brightness %s  gamma %s", settings.Brightness, settings.Gamma)),
	)

	rows := []string{title}
	for _, p := range display.Properties {
		rows = append(rows, "", m.renderGauge(p, d.Value(p)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderGauge(p display.Property, value int) string {
	var label string
	if p == m.snap.Focus {
		label = FocusedGaugeLabelStyle.Render(FocusMarker + " " + p.String())
	} else {
		label = GaugeLabelStyle.Render(p.String())
	}
	bar := m.gauge.ViewAs(float64(value) / float64(display.MaxValue))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		label,
		bar,
		GaugeValueStyle.Render(fmt.Sprintf("%d%%", value)),
	)
}

func (m Model) renderDiagnostics() string {
	keys := ""
	if m.snap.Keys != nil {
		keys = m.help.FullHelpView(m.snap.Keys.FullHelp())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("Logs"),
		m.logView.View(),
		SectionTitleStyle.Render("Keys"),
		keys,
	)
}

// renderLogLines colors each line by level and cuts it to width.
func renderLogLines(lines []string, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		style := logLineStyle(line)
		if width > 0 {
			style = style.MaxWidth(width)
		}
		out[i] = style.Render(line)
	}
	return strings.Join(out, "\n")
}
