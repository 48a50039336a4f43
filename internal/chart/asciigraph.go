package chart

import (
	"github.com/guptarohit/asciigraph"
)

// ASCIIGraphRenderer delegates plotting to the asciigraph library. The
// wrapper enforces the same window contract as the hand-rolled backend:
// at most the most recent width values are plotted into height rows.
type ASCIIGraphRenderer struct{}

// Name returns the backend identifier.
func (r *ASCIIGraphRenderer) Name() string {
	return BackendASCII
}

// Render plots the series with asciigraph. The library draws its own axis
// labels; height excludes nothing, the chart is exactly height rows of
// plot plus the library's axis column.
func (r *ASCIIGraphRenderer) Render(series []float64, height, width int) string {
	if height < MinHeight {
		height = MinHeight
	}
	if width <= 0 || len(series) == 0 {
		return ""
	}

	series = trimToWidth(series, width)

	// A single point cannot span a line; duplicate it so the library
	// draws a flat segment instead of erroring.
	if len(series) == 1 {
		series = []float64{series[0], series[0]}
	}

	// Scale the series into the dominant unit so the library's numeric
	// labels stay readable; the caption names the unit.
	unit, divisor := unitFor(series)
	scaled := make([]float64, len(series))
	for i, v := range series {
		scaled[i] = v / divisor
	}

	return asciigraph.Plot(scaled,
		asciigraph.Height(height-1),
		asciigraph.Precision(2),
		asciigraph.Offset(3),
		asciigraph.Caption(unit+"/s"),
	)
}
