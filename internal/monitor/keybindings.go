package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cumulus13/bwmon/internal/chart"
)

// keyMap defines the dashboard keyboard shortcuts.
type keyMap struct {
	Quit     key.Binding
	Download key.Binding
	Upload   key.Binding
	Both     key.Binding
	Renderer key.Binding
	Summary  key.Binding
	Help     key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
	Download: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "download"),
	),
	Upload: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "upload"),
	),
	Both: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "both"),
	),
	Renderer: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "renderer"),
	),
	Summary: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "summary"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ShortHelp returns the footer bindings.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Download, k.Upload, k.Both, k.Renderer, k.Summary, k.Help}
}

// FullHelp returns the bindings grouped for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Download, k.Upload, k.Both},
		{k.Renderer, k.Summary},
		{k.Quit, k.Help},
	}
}

// handleKeyMsg processes keyboard input. Returns true when the key was
// handled, along with any resulting command.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// While the help overlay is open any key closes it, but quit still
	// quits.
	if m.showHelp {
		m.showHelp = false
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return true, tea.Quit
		}
		return true, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Download):
		m.mode = ModeDownload
		return true, nil

	case key.Matches(msg, keys.Upload):
		m.mode = ModeUpload
		return true, nil

	case key.Matches(msg, keys.Both):
		m.mode = ModeBoth
		return true, nil

	case key.Matches(msg, keys.Renderer):
		m.renderer = chart.Toggle(m.renderer)
		return true, nil

	case key.Matches(msg, keys.Summary):
		m.showSummary = !m.showSummary
		return true, nil

	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return true, nil
	}

	return false, nil
}
