// Package memory holds the snapshot store standing in for the remote
// data layer. It owns scoping by salesperson; the aggregation engine
// only ever receives the already-filtered collections.
package memory

import (
	"sync"

	"sales-insights/internal/application/insights"
)

// Store keeps one snapshot of the five record collections and hands out
// scoped copies. Replace swaps the whole snapshot; there is no
// per-record mutation, matching the read-only contract of the engine.
type Store struct {
	mu   sync.RWMutex
	snap insights.Snapshot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new snapshot wholesale.
func (s *Store) Replace(snap insights.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// Snapshot returns the unscoped snapshot, the admin view.
func (s *Store) Snapshot() insights.Snapshot {
	return s.SnapshotFor("")
}

// SnapshotFor returns the records owned by the given salesperson. The
// empty string means no scoping. The returned slices are copies; the
// caller cannot disturb the stored snapshot through them.
func (s *Store) SnapshotFor(salesperson string) insights.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := insights.Snapshot{}
	for _, c := range s.snap.Clients {
		if salesperson == "" || c.Salesperson == salesperson {
			out.Clients = append(out.Clients, c)
		}
	}
	for _, o := range s.snap.Orders {
		if salesperson == "" || o.Salesperson == salesperson {
			out.Orders = append(out.Orders, o)
		}
	}
	for _, o := range s.snap.Opportunities {
		if salesperson == "" || o.Salesperson == salesperson {
			out.Opportunities = append(out.Opportunities, o)
		}
	}
	for _, a := range s.snap.Activities {
		if salesperson == "" || a.Salesperson == salesperson {
			out.Activities = append(out.Activities, a)
		}
	}
	for _, q := range s.snap.Quotas {
		if salesperson == "" || q.Salesperson == salesperson {
			out.Quotas = append(out.Quotas, q)
		}
	}
	return out
}

// Salespeople lists the distinct salesperson references present in the
// snapshot, in first-seen order.
func (s *Store) Salespeople() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, c := range s.snap.Clients {
		add(c.Salesperson)
	}
	for _, o := range s.snap.Orders {
		add(o.Salesperson)
	}
	for _, o := range s.snap.Opportunities {
		add(o.Salesperson)
	}
	for _, a := range s.snap.Activities {
		add(a.Salesperson)
	}
	return out
}
