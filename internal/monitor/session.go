package monitor

import (
	"context"
	"time"

	"github.com/cumulus13/bwmon/internal/logger"
	"github.com/cumulus13/bwmon/internal/netstat"
)

// Session holds all running state for one monitoring run: the resolved
// interface, the sampler baseline, the rate history and the aggregate
// statistics. It is owned by the tick loop and passed explicitly; nothing
// here is shared across goroutines.
type Session struct {
	Iface   string
	Sampler *Sampler
	History *History
	Stats   *Stats

	provider netstat.Provider
	log      logger.Logger
}

// NewSession resolves the interface pattern against the provider's current
// snapshots and primes the sampler with the first reading, so the first
// regular tick already produces a sample.
func NewSession(ctx context.Context, provider netstat.Provider, pattern string, capacity int, log logger.Logger) (*Session, error) {
	return NewSessionAt(ctx, provider, pattern, capacity, log, time.Now())
}

// NewSessionAt is NewSession with an explicit baseline instant. Callers
// that drive ticks with known timestamps use it to get exact intervals.
func NewSessionAt(ctx context.Context, provider netstat.Provider, pattern string, capacity int, log logger.Logger, now time.Time) (*Session, error) {
	if log == nil {
		log = logger.Noop()
	}

	snaps, err := provider.Snapshots(ctx)
	if err != nil {
		return nil, err
	}

	iface, err := Resolve(pattern, snaps)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Iface:    iface,
		Sampler:  NewSampler(),
		History:  NewHistory(capacity),
		Stats:    NewStats(now),
		provider: provider,
		log:      log,
	}

	// Baseline read. The sampler drops its first reading, so priming here
	// means the caller's first tick already reports a real rate.
	if snap, ok := Find(iface, snaps); ok {
		sess.Sampler.Tick(snap, now)
	}

	return sess, nil
}

// Tick performs one sampling cycle: read counters, compute the rate,
// append to history and fold into the statistics. A failed counter read or
// a vanished interface is transient: it is logged, the sampler baseline is
// left untouched and the previous state simply carries over to the next
// interval. Returns the new sample and whether one was produced.
func (s *Session) Tick(ctx context.Context, now time.Time) (Sample, bool) {
	snaps, err := s.provider.Snapshots(ctx)
	if err != nil {
		s.log.Warn("counter read failed, skipping tick: %v", err)
		return Sample{}, false
	}

	snap, ok := Find(s.Iface, snaps)
	if !ok {
		s.log.Warn("interface %s disappeared, skipping tick", s.Iface)
		return Sample{}, false
	}

	sample, rxDelta, txDelta, ok := s.Sampler.Tick(snap, now)
	if !ok {
		return Sample{}, false
	}

	s.History.Push(sample)
	s.Stats.Update(sample, rxDelta, txDelta)
	s.log.Debug("tick %s: rx=%.0f B/s tx=%.0f B/s", s.Iface, sample.RxRate, sample.TxRate)
	return sample, true
}

// Latest returns the most recent sample, or false when history is empty.
func (s *Session) Latest() (Sample, bool) {
	window := s.History.Window(1)
	if len(window) == 0 {
		return Sample{}, false
	}
	return window[0], true
}
