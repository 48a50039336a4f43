// Package netstat reads per-interface cumulative byte counters from the
// operating system. It exposes a small Provider interface so the monitor
// core can be tested against canned snapshots.
package netstat

import (
	"context"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// Snapshot holds the cumulative byte counters for one network interface
// at one point in time. Counters only ever grow, except when the driver
// resets them (see monitor.Sampler for the reset policy).
type Snapshot struct {
	Name    string
	RxBytes uint64
	TxBytes uint64
}

// Total returns the combined rx+tx counter, used for busiest-interface
// auto-selection.
func (s Snapshot) Total() uint64 {
	return s.RxBytes + s.TxBytes
}

// Provider enumerates the current interface counters. An empty result is
// valid (a machine with no interfaces), not an error. Implementations must
// return interfaces in a stable order between calls.
type Provider interface {
	Snapshots(ctx context.Context) ([]Snapshot, error)
}

// SystemProvider reads counters from the OS via gopsutil.
type SystemProvider struct{}

// NewSystemProvider creates a provider backed by the operating system's
// per-interface I/O counters.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

// Snapshots returns one Snapshot per interface. gopsutil enumerates
// interfaces in a stable platform order, which the resolver relies on
// for deterministic tie-breaking.
func (p *SystemProvider) Snapshots(ctx context.Context) ([]Snapshot, error) {
	counters, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	snaps := make([]Snapshot, 0, len(counters))
	for _, c := range counters {
		snaps = append(snaps, Snapshot{
			Name:    c.Name,
			RxBytes: c.BytesRecv,
			TxBytes: c.BytesSent,
		})
	}
	return snaps, nil
}
