package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderRates())
	b.WriteString("\n\n")
	b.WriteString(m.renderCharts())

	if m.showSummary {
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with the interface and interval.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("bwmon")

	info := LabelStyle.Render(fmt.Sprintf(" | %s | every %s | %s",
		m.session.Iface, m.settings.Interval, m.renderer.Name()))

	if m.sampleErr {
		info += WarningStyle.Render(" | stale")
	}

	return HeaderStyle.Render(title + info)
}

// renderRates renders the current rate readout line.
func (m Model) renderRates() string {
	down := DownloadStyle.Render(fmt.Sprintf("%s %s", MarkerDownload, FormatRate(m.lastSample.RxRate)))
	up := UploadStyle.Render(fmt.Sprintf("%s %s", MarkerUpload, FormatRate(m.lastSample.TxRate)))

	switch m.mode {
	case ModeDownload:
		return "  " + down
	case ModeUpload:
		return "  " + up
	default:
		return "  " + down + "   " + up
	}
}

// renderCharts renders one chart per plotted direction.
func (m Model) renderCharts() string {
	width := m.plotWidth()
	height := m.plotHeight()

	var sections []string
	if m.mode != ModeUpload {
		series := m.session.History.RxWindow(width)
		sections = append(sections,
			ChartTitleStyle.Render("Download"),
			DownloadStyle.Render(m.renderer.Render(series, height, width)))
	}
	if m.mode != ModeDownload {
		series := m.session.History.TxWindow(width)
		sections = append(sections,
			ChartTitleStyle.Render("Upload"),
			UploadStyle.Render(m.renderer.Render(series, height, width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSummary renders the running statistics block.
func (m Model) renderSummary() string {
	s := m.session.Stats

	line := func(label, rx, tx string) string {
		return fmt.Sprintf("  %s %s  %s",
			LabelStyle.Render(fmt.Sprintf("%-8s", label)),
			DownloadStyle.Render(fmt.Sprintf("%s %-14s", MarkerDownload, rx)),
			UploadStyle.Render(fmt.Sprintf("%s %s", MarkerUpload, tx)))
	}

	rows := []string{
		line("peak", FormatRate(s.PeakRx), FormatRate(s.PeakTx)),
		line("avg", FormatRate(s.AvgRx()), FormatRate(s.AvgTx())),
		line("min", FormatRate(s.MinRxRate()), FormatRate(s.MinTxRate())),
		line("total", FormatBytes(s.TotalRxBytes), FormatBytes(s.TotalTxBytes)),
		fmt.Sprintf("  %s %s",
			LabelStyle.Render(fmt.Sprintf("%-8s", "runtime")),
			ValueStyle.Render(s.Runtime(time.Now()).Truncate(time.Second).String())),
	}

	return strings.Join(rows, "\n")
}

// renderFooter renders the keyboard hint line via bubbles/help.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.View(keys))
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	rows := []string{
		TitleStyle.Render("bwmon keys"),
		"",
		"  q, ctrl+c, esc   quit",
		"  d                download only",
		"  u                upload only",
		"  b                both directions",
		"  r                switch chart renderer",
		"  s                toggle statistics summary",
		"  ?                toggle this help",
		"",
		LabelStyle.Render("press any key to return"),
	}
	return HelpStyle.Render(strings.Join(rows, "\n"))
}

// RenderFinalStats formats the end-of-session statistics block printed
// after the dashboard exits. Plain text, no styling.
func RenderFinalStats(sess *Session, now time.Time) string {
	s := sess.Stats

	var b strings.Builder
	fmt.Fprintf(&b, "%s statistics\n", sess.Iface)
	fmt.Fprintf(&b, "  runtime    %s\n", s.Runtime(now).Truncate(time.Second))
	fmt.Fprintf(&b, "  samples    %d\n", s.Count())
	fmt.Fprintf(&b, "  download   peak %s, avg %s, min %s, stddev %s\n",
		FormatRate(s.PeakRx), FormatRate(s.AvgRx()), FormatRate(s.MinRxRate()), FormatRate(s.StdDevRx()))
	fmt.Fprintf(&b, "  upload     peak %s, avg %s, min %s, stddev %s\n",
		FormatRate(s.PeakTx), FormatRate(s.AvgTx()), FormatRate(s.MinTxRate()), FormatRate(s.StdDevTx()))
	fmt.Fprintf(&b, "  transferred %s down, %s up\n",
		FormatBytes(s.TotalRxBytes), FormatBytes(s.TotalTxBytes))
	return b.String()
}

// FormatBytes formats a byte count as a human-readable string.
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatRate formats a bytes-per-second rate as a human-readable string.
func FormatRate(bytesPerSecond float64) string {
	if bytesPerSecond < 1024 {
		return fmt.Sprintf("%.0f B/s", bytesPerSecond)
	} else if bytesPerSecond < 1024*1024 {
		return fmt.Sprintf("%.1f KB/s", bytesPerSecond/1024)
	} else if bytesPerSecond < 1024*1024*1024 {
		return fmt.Sprintf("%.1f MB/s", bytesPerSecond/(1024*1024))
	}
	return fmt.Sprintf("%.1f GB/s", bytesPerSecond/(1024*1024*1024))
}
