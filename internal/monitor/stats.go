package monitor

import (
	"math"
	"time"
)

// Stats accumulates running statistics over every accepted sample for the
// session. Peaks, sums, counts and totals only ever grow; totals track the
// raw byte deltas seen by the sampler, so they are unaffected by history
// eviction.
type Stats struct {
	PeakRx float64
	PeakTx float64
	MinRx  float64
	MinTx  float64

	sumRx   float64
	sumTx   float64
	sqSumRx float64
	sqSumTx float64
	count   uint64

	TotalRxBytes uint64
	TotalTxBytes uint64

	StartedAt time.Time
}

// NewStats creates a stats aggregator with the session start time.
func NewStats(startedAt time.Time) *Stats {
	return &Stats{
		MinRx:     math.Inf(1),
		MinTx:     math.Inf(1),
		StartedAt: startedAt,
	}
}

// Update folds one accepted sample and its raw byte deltas into the
// running statistics.
func (st *Stats) Update(s Sample, rxDelta, txDelta uint64) {
	if s.RxRate > st.PeakRx {
		st.PeakRx = s.RxRate
	}
	if s.TxRate > st.PeakTx {
		st.PeakTx = s.TxRate
	}
	if s.RxRate < st.MinRx {
		st.MinRx = s.RxRate
	}
	if s.TxRate < st.MinTx {
		st.MinTx = s.TxRate
	}

	st.sumRx += s.RxRate
	st.sumTx += s.TxRate
	st.sqSumRx += s.RxRate * s.RxRate
	st.sqSumTx += s.TxRate * s.TxRate
	st.count++

	st.TotalRxBytes += rxDelta
	st.TotalTxBytes += txDelta
}

// Count returns the number of accepted samples.
func (st *Stats) Count() uint64 {
	return st.count
}

// AvgRx returns the mean download rate, or 0 before the first sample.
func (st *Stats) AvgRx() float64 {
	if st.count == 0 {
		return 0
	}
	return st.sumRx / float64(st.count)
}

// AvgTx returns the mean upload rate, or 0 before the first sample.
func (st *Stats) AvgTx() float64 {
	if st.count == 0 {
		return 0
	}
	return st.sumTx / float64(st.count)
}

// StdDevRx returns the sample standard deviation of the download rate.
// Needs at least two samples.
func (st *Stats) StdDevRx() float64 {
	return stddev(st.sumRx, st.sqSumRx, st.count)
}

// StdDevTx returns the sample standard deviation of the upload rate.
func (st *Stats) StdDevTx() float64 {
	return stddev(st.sumTx, st.sqSumTx, st.count)
}

// MinRxRate returns the minimum observed download rate, or 0 before the
// first sample.
func (st *Stats) MinRxRate() float64 {
	if st.count == 0 {
		return 0
	}
	return st.MinRx
}

// MinTxRate returns the minimum observed upload rate, or 0 before the
// first sample.
func (st *Stats) MinTxRate() float64 {
	if st.count == 0 {
		return 0
	}
	return st.MinTx
}

// Runtime returns the elapsed session time.
func (st *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(st.StartedAt)
}

// stddev computes the sample standard deviation from running sums.
// Floating point cancellation can push the variance slightly negative
// for near-constant series; clamp to zero.
func stddev(sum, sqSum float64, n uint64) float64 {
	if n < 2 {
		return 0
	}
	mean := sum / float64(n)
	variance := (sqSum - float64(n)*mean*mean) / float64(n-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}
