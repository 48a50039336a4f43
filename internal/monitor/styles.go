package monitor

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette.
const (
	ColorDownload = lipgloss.Color("#00FFFF") // Neon cyan
	ColorUpload   = lipgloss.Color("#FFAA00") // Electric amber
	ColorAccent   = lipgloss.Color("#FF2E97") // Neon pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")
	ColorWarning       = lipgloss.Color("#FF0055")
)

// Base styles for the dashboard.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	DownloadStyle = lipgloss.NewStyle().
			Foreground(ColorDownload)

	UploadStyle = lipgloss.NewStyle().
			Foreground(ColorUpload)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ChartTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(1, 2)
)

// Direction markers for rate readouts.
const (
	MarkerDownload = "↓"
	MarkerUpload   = "↑"
)
