package netstat

import "context"

// FakeProvider serves scripted snapshot lists, one list per call.
// Once the script is exhausted the last list (or Err) is repeated.
// Used by tests and by the monitor session tests in place of the OS.
type FakeProvider struct {
	Script [][]Snapshot
	Err    error
	calls  int
}

// NewFakeProvider creates a provider that returns the given snapshot lists
// in order, repeating the final list once the script runs out.
func NewFakeProvider(script ...[]Snapshot) *FakeProvider {
	return &FakeProvider{Script: script}
}

// Snapshots returns the next scripted snapshot list.
func (f *FakeProvider) Snapshots(ctx context.Context) ([]Snapshot, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Script) == 0 {
		return nil, nil
	}

	idx := f.calls
	if idx >= len(f.Script) {
		idx = len(f.Script) - 1
	}
	f.calls++
	return f.Script[idx], nil
}

// Calls reports how many times Snapshots has been invoked.
func (f *FakeProvider) Calls() int {
	return f.calls
}
