package chart

import (
	"fmt"
	"math"
)

// axisUnits are the unit suffixes for axis labels, smallest first.
var axisUnits = []string{"B", "KB", "MB", "GB"}

// FormatAxisLabel formats a bytes/second value for the chart axis with
// automatic unit scaling: the largest unit where the magnitude is >= 1,
// at two decimal places.
func FormatAxisLabel(v float64) string {
	if v < 0 {
		v = 0
	}

	unit := 0
	for v >= 1024 && unit < len(axisUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", v, axisUnits[unit])
}

// unitFor picks the axis unit for a series from its largest value,
// returning the suffix and the divisor that scales values into that unit.
func unitFor(series []float64) (string, float64) {
	var maxV float64
	for _, v := range series {
		if v > maxV {
			maxV = v
		}
	}

	unit := 0
	divisor := 1.0
	for maxV >= 1024 && unit < len(axisUnits)-1 {
		maxV /= 1024
		divisor *= 1024
		unit++
	}
	return axisUnits[unit], divisor
}

// seriesBounds returns the min and max of a series. A flat or single-point
// series gets a small epsilon span so scaling never divides by zero and
// the line renders as one flat row.
func seriesBounds(series []float64) (minV, maxV float64) {
	minV, maxV = series[0], series[0]
	for _, v := range series {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		maxV = minV + 1
	}
	return minV, maxV
}

// rowFor maps a value onto a row index. Row 0 is the top of the chart
// (maxV), row height-1 the bottom (minV).
func rowFor(v, minV, maxV float64, height int) int {
	r := int(math.Round((maxV - v) / (maxV - minV) * float64(height-1)))
	if r < 0 {
		r = 0
	}
	if r > height-1 {
		r = height - 1
	}
	return r
}

// axisValue returns the series value represented by a row, for labeling.
func axisValue(row int, minV, maxV float64, height int) float64 {
	if height <= 1 {
		return maxV
	}
	return maxV - float64(row)*(maxV-minV)/float64(height-1)
}
