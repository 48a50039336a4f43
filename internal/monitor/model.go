package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cumulus13/bwmon/internal/chart"
	"github.com/cumulus13/bwmon/internal/config"
)

// DirectionMode selects which traffic directions the dashboard plots.
type DirectionMode int

const (
	ModeBoth DirectionMode = iota
	ModeDownload
	ModeUpload
)

// String returns a human-readable label for the direction mode.
func (d DirectionMode) String() string {
	switch d {
	case ModeDownload:
		return "download"
	case ModeUpload:
		return "upload"
	default:
		return "both"
	}
}

// Model is the Bubble Tea model for the bandwidth dashboard.
type Model struct {
	session  *Session
	renderer chart.Renderer
	settings config.Settings

	mode        DirectionMode
	showSummary bool
	showHelp    bool
	help        help.Model

	width      int
	height     int
	lastSample Sample
	lastUpdate time.Time
	sampleErr  bool
	quitting   bool
}

// tickMsg signals that the sampling interval has elapsed.
type tickMsg time.Time

// NewModel creates a dashboard model around an already-primed session.
func NewModel(session *Session, settings config.Settings) Model {
	mode := ModeBoth
	switch {
	case settings.DownloadOnly:
		mode = ModeDownload
	case settings.UploadOnly:
		mode = ModeUpload
	}

	return Model{
		session:     session,
		renderer:    chart.New(settings.Renderer),
		settings:    settings,
		mode:        mode,
		showSummary: settings.Summary,
		help:        help.New(),
	}
}

// Session exposes the underlying monitoring session, for the final
// statistics printout after the program exits.
func (m Model) Session() *Session {
	return m.session
}

// Init starts the sampling timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.handleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		sample, ok := m.session.Tick(context.Background(), time.Time(msg))
		m.sampleErr = !ok
		if ok {
			m.lastSample = sample
			m.lastUpdate = sample.Timestamp
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that fires after the sampling interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.settings.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// plotWidth returns the chart width in columns for the current terminal.
func (m Model) plotWidth() int {
	return chart.PlotWidth(m.settings.Width, m.width)
}

// plotHeight returns the per-chart height. When both directions are shown
// the configured height applies to each chart.
func (m Model) plotHeight() int {
	h := m.settings.Height
	if h < chart.MinHeight {
		h = chart.MinHeight
	}
	return h
}
