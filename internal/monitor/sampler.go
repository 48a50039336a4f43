package monitor

import (
	"time"

	"github.com/cumulus13/bwmon/internal/netstat"
)

// Sample is one throughput measurement in bytes per second. Immutable once
// created; the history buffer never modifies stored samples.
type Sample struct {
	RxRate    float64
	TxRate    float64
	Timestamp time.Time
}

// Sampler converts successive cumulative-counter snapshots into rates.
// The first snapshot only establishes the baseline and produces no sample.
type Sampler struct {
	prev   netstat.Snapshot
	prevAt time.Time
	primed bool
}

// NewSampler creates an unprimed sampler. The first Tick call sets the
// baseline and reports no sample.
func NewSampler() *Sampler {
	return &Sampler{}
}

// minElapsed guards the rate division against clock jitter.
const minElapsed = time.Millisecond

// Tick ingests the current snapshot for the monitored interface and returns
// the computed sample plus the raw byte deltas, or ok=false when no sample
// can be produced (first call, or a zero/negative elapsed interval).
//
// Counter resets: if a counter decreased since the previous snapshot the
// interface restarted counting from zero, so the current value itself is
// the delta. Rates therefore never go negative.
func (s *Sampler) Tick(cur netstat.Snapshot, now time.Time) (Sample, uint64, uint64, bool) {
	if !s.primed {
		s.prev = cur
		s.prevAt = now
		s.primed = true
		return Sample{}, 0, 0, false
	}

	elapsed := now.Sub(s.prevAt)
	if elapsed < minElapsed {
		return Sample{}, 0, 0, false
	}

	rxDelta := counterDelta(s.prev.RxBytes, cur.RxBytes)
	txDelta := counterDelta(s.prev.TxBytes, cur.TxBytes)

	s.prev = cur
	s.prevAt = now

	secs := elapsed.Seconds()
	sample := Sample{
		RxRate:    float64(rxDelta) / secs,
		TxRate:    float64(txDelta) / secs,
		Timestamp: now,
	}
	return sample, rxDelta, txDelta, true
}

// Primed reports whether the sampler has a baseline snapshot.
func (s *Sampler) Primed() bool {
	return s.primed
}

// Reset drops the baseline so the next Tick re-primes. Used when the
// monitored interface changes.
func (s *Sampler) Reset() {
	s.primed = false
}

// counterDelta handles the reset case: a decreased counter means the
// interface restarted from zero, so the current value is the delta.
func counterDelta(prev, cur uint64) uint64 {
	if cur < prev {
		return cur
	}
	return cur - prev
}
