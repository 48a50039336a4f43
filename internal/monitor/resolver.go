package monitor

import (
	"strings"

	"github.com/cumulus13/bwmon/internal/errors"
	"github.com/cumulus13/bwmon/internal/netstat"
)

// Resolve maps a user-supplied interface pattern to exactly one interface
// name from the given snapshots. Resolution is deterministic: the same
// pattern against the same snapshot list always picks the same interface.
//
// Priority order:
//  1. Empty pattern: the interface with the largest rx+tx counter (the
//     busiest one is almost always the one the user cares about).
//  2. Exact name match, case-sensitive. An exact short identifier must
//     never be shadowed by a longer composite adapter name.
//  3. Case-insensitive substring match. A single hit wins outright.
//  4. Among multiple substring hits, the shortest name wins; ties keep
//     the original enumeration order.
func Resolve(pattern string, snaps []netstat.Snapshot) (string, error) {
	if pattern == "" {
		return autoSelect(snaps)
	}

	// Exact match always wins over any partial match.
	for _, s := range snaps {
		if s.Name == pattern {
			return s.Name, nil
		}
	}

	lower := strings.ToLower(pattern)
	var matches []string
	for _, s := range snaps {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			matches = append(matches, s.Name)
		}
	}

	if len(matches) == 0 {
		return "", errors.NewInterfaceNotFound(pattern, Names(snaps))
	}

	// Shortest name is the most specific candidate. The scan preserves
	// enumeration order, so equal lengths resolve to the earliest hit.
	best := matches[0]
	for _, name := range matches[1:] {
		if len(name) < len(best) {
			best = name
		}
	}
	return best, nil
}

// autoSelect picks the interface with the greatest cumulative traffic.
func autoSelect(snaps []netstat.Snapshot) (string, error) {
	if len(snaps) == 0 {
		return "", errors.NewNoInterfaces()
	}

	best := snaps[0]
	for _, s := range snaps[1:] {
		if s.Total() > best.Total() {
			best = s
		}
	}
	return best.Name, nil
}

// Names returns the interface names from a snapshot list, in enumeration order.
func Names(snaps []netstat.Snapshot) []string {
	names := make([]string, len(snaps))
	for i, s := range snaps {
		names[i] = s.Name
	}
	return names
}

// Find returns the snapshot for the named interface, or false if the
// interface is no longer present in the list.
func Find(name string, snaps []netstat.Snapshot) (netstat.Snapshot, bool) {
	for _, s := range snaps {
		if s.Name == name {
			return s, true
		}
	}
	return netstat.Snapshot{}, false
}
