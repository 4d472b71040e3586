package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuib/internal/app"
	"github.com/muurk/tuib/internal/logging"
)

// DefaultTickRate is the redraw period when none is given.
const DefaultTickRate = 50 * time.Millisecond

// Rows taken by the frame, header, tabs and footer.
const chromeHeight = 6

// Rows taken by the diagnostics section titles.
const diagnosticsChrome = 2

// tickMsg drives the periodic redraw.
type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model of the panel.
type Model struct {
	app      *app.App
	logs     *logging.Buffer
	tickRate time.Duration

	snap   app.Snapshot
	width  int
	height int

	spinner spinner.Model
	gauge   progress.Model
	logView viewport.Model
	help    help.Model
}

// NewModel creates the model for a. logs may be nil, in which case the log
// pane stays empty.
func NewModel(a *app.App, logs *logging.Buffer, tickRate time.Duration) Model {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	gauge := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
		progress.WithWidth(30),
	)

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	return Model{
		app:      a,
		logs:     logs,
		tickRate: tickRate,
		snap:     a.Snapshot(),
		spinner:  s,
		gauge:    gauge,
		logView:  vp,
		help:     help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.tickRate), m.spinner.Tick)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshLogs()
		return m, nil

	case tickMsg:
		_, m.snap = m.app.Step(app.TickEvent())
		m.layout()
		m.refreshLogs()
		return m, tick(m.tickRate)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.snap.OnDiagnostics() &&
			(key.Matches(msg, m.logView.KeyMap.PageUp) || key.Matches(msg, m.logView.KeyMap.PageDown)) {
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			return m, cmd
		}

		result, snap := m.app.Step(app.KeyEvent(msg.String()))
		m.snap = snap
		m.layout()
		if result == app.Exit {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// layout sizes the components for the current terminal and keymap.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	inner := m.width - 4

	m.help.Width = inner
	m.gauge.Width = max(inner-lipgloss.Width(GaugeLabelStyle.Render(""))-lipgloss.Width(GaugeValueStyle.Render(""))-1, 10)

	helpHeight := 0
	if m.snap.Keys != nil {
		helpHeight = lipgloss.Height(m.help.FullHelpView(m.snap.Keys.FullHelp()))
	}
	m.logView.Width = inner
	m.logView.Height = max(m.height-chromeHeight-diagnosticsChrome-helpHeight, 3)
}

// refreshLogs reloads the log pane, following the tail unless scrolled up.
func (m *Model) refreshLogs() {
	if m.logs == nil {
		return
	}
	follow := m.logView.AtBottom()
	m.logView.SetContent(renderLogLines(m.logs.Lines(0), m.logView.Width))
	if follow {
		m.logView.GotoBottom()
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
