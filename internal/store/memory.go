// internal/store/memory.go
//
// In-memory implementation of Store.
//
// Characteristics:
//   - Records keyed by ID in a map, insertion order kept for stats.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"slices"
	"sync"
)

type memory struct {
	mu      sync.RWMutex
	records map[string]Record
	order   []string // IDs, oldest first
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]Record)}
}

func (m *memory) Save(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	r.Guesses = slices.Clone(r.Guesses)
	m.records[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, m.records[m.order[i]])
	}
	return out, nil
}

func (m *memory) Stats(ctx context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]Record, len(m.order))
	for i, id := range m.order {
		records[i] = m.records[id]
	}
	return computeStats(records), nil
}

func (m *memory) Close() error { return nil }
