package chart

import (
	"fmt"
	"strings"
)

// Line-drawing glyphs for the hand-rolled plotter. Consecutive points are
// connected with corner and vertical glyphs so the curve reads as a
// continuous line rather than scattered marks.
const (
	glyphFlat     = '─'
	glyphVertical = '│'
	glyphDownLeft = '╮' // line turns downward in this column
	glyphUpRight  = '╰' // line resumes rightward after falling
	glyphUpLeft   = '╯' // line turns upward in this column
	glyphDownRt   = '╭' // line resumes rightward after rising
	glyphAxis     = '┤'
)

// GlyphRenderer is the hand-rolled chart backend. It places slope-aware
// glyphs on a rune grid and prefixes each row with a unit-scaled axis
// label. When the series is shorter than the width the plot is left-padded
// so the chart grows from the right edge.
type GlyphRenderer struct{}

// Name returns the backend identifier.
func (r *GlyphRenderer) Name() string {
	return BackendBlocks
}

// Render plots the series into height rows by width columns.
func (r *GlyphRenderer) Render(series []float64, height, width int) string {
	if height < MinHeight {
		height = MinHeight
	}
	if width <= 0 || len(series) == 0 {
		return ""
	}

	series = trimToWidth(series, width)
	minV, maxV := seriesBounds(series)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Most recent value sits in the rightmost column.
	offset := width - len(series)

	prevRow := -1
	for i, v := range series {
		col := offset + i
		row := rowFor(v, minV, maxV, height)

		switch {
		case prevRow < 0 || prevRow == row:
			grid[row][col] = glyphFlat
		case row < prevRow:
			// Value rose: turn upward at the previous level, run the
			// vertical, resume rightward at the new level.
			grid[prevRow][col] = glyphUpLeft
			for y := row + 1; y < prevRow; y++ {
				grid[y][col] = glyphVertical
			}
			grid[row][col] = glyphDownRt
		default:
			// Value fell.
			grid[prevRow][col] = glyphDownLeft
			for y := prevRow + 1; y < row; y++ {
				grid[y][col] = glyphVertical
			}
			grid[row][col] = glyphUpRight
		}
		prevRow = row
	}

	lines := make([]string, height)
	for row := range grid {
		label := FormatAxisLabel(axisValue(row, minV, maxV, height))
		lines[row] = fmt.Sprintf("%*s %c%s", Gutter-2, label, glyphAxis, string(grid[row]))
	}
	return padLines(lines)
}

// RowPlacements reports which row each series value lands on, in plot
// order. Exposed so both backends can be checked against the same scaling
// contract.
func (r *GlyphRenderer) RowPlacements(series []float64, height, width int) []int {
	series = trimToWidth(series, width)
	if len(series) == 0 {
		return nil
	}
	minV, maxV := seriesBounds(series)

	rows := make([]int, len(series))
	for i, v := range series {
		rows[i] = rowFor(v, minV, maxV, height)
	}
	return rows
}

// stripAxis removes the axis gutter from a rendered line, for tests.
func stripAxis(line string) string {
	if idx := strings.IndexRune(line, glyphAxis); idx >= 0 {
		return line[idx+len(string(glyphAxis)):]
	}
	return line
}
