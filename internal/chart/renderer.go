// Package chart renders a rate history as a height/width-constrained
// terminal line chart with a numeric axis. Two interchangeable backends
// implement the same contract: a hand-rolled glyph plotter and a wrapper
// around the asciigraph library.
package chart

import "strings"

// Backend names accepted by the --renderer flag.
const (
	BackendASCII  = "ascii"
	BackendBlocks = "blocks"
)

// Gutter is the number of columns reserved for axis labels and the axis
// line; plot width derived from a terminal width subtracts it.
const Gutter = 12

// MinHeight is the smallest usable chart height.
const MinHeight = 2

// Renderer turns a window of rate values (bytes/second, chronological
// order) into a chart of exactly height rows. At most the most recent
// width values are plotted; older history is the caller's concern.
type Renderer interface {
	Render(series []float64, height, width int) string
	Name() string
}

// New returns the renderer for the given backend name. Unknown names fall
// back to the asciigraph backend.
func New(backend string) Renderer {
	if backend == BackendBlocks {
		return &GlyphRenderer{}
	}
	return &ASCIIGraphRenderer{}
}

// Toggle returns the other backend, for the runtime renderer switch.
func Toggle(r Renderer) Renderer {
	if r.Name() == BackendBlocks {
		return &ASCIIGraphRenderer{}
	}
	return &GlyphRenderer{}
}

// PlotWidth derives the chart column count from a terminal width, keeping
// room for the axis gutter. Explicit widths win over the terminal width.
func PlotWidth(explicit, termWidth int) int {
	if explicit > 0 {
		return explicit
	}
	w := termWidth - Gutter
	if w < 10 {
		w = 10
	}
	return w
}

// trimToWidth keeps only the most recent width values.
func trimToWidth(series []float64, width int) []float64 {
	if width > 0 && len(series) > width {
		return series[len(series)-width:]
	}
	return series
}

// padLines ensures every line of a rendered chart is terminated uniformly.
func padLines(lines []string) string {
	return strings.Join(lines, "\n")
}
