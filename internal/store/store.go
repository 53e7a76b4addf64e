// internal/store/store.go
//
// History of finished solving sessions.
//
// Implementations:
//   - memory (this package): map + RWMutex, lost on exit; used by tests and
//     when history is disabled.
//   - sqlite (sqlite.go): durable, one row per session.
//
// Stats are derived from the saved records: played, solved, streaks and
// the distribution of rounds needed for solved sessions.

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record ID is unknown.
var ErrNotFound = errors.New("not found")

// Record is one finished session.
type Record struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`   // "solve" | "simulate"
	Secret     string    `json:"secret"` // known for simulations and solved sessions
	Guesses    []string  `json:"guesses"`
	State      string    `json:"state"` // session.State
	Rules      string    `json:"rules"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Solved reports whether the session found the secret.
func (r Record) Solved() bool { return r.State == "solved" }

// Stats summarizes history.
type Stats struct {
	Played        int
	Solved        int
	CurrentStreak int
	MaxStreak     int
	Distribution  map[int]int // rounds → solved sessions
}

// Store persists session records.
type Store interface {
	// Save inserts or replaces a record.
	Save(ctx context.Context, r Record) error

	// Get retrieves a record by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)

	// Stats summarizes every saved record.
	Stats(ctx context.Context) (Stats, error)

	// Close releases resources.
	Close() error
}

// computeStats folds records ordered oldest first.
func computeStats(records []Record) Stats {
	st := Stats{Distribution: map[int]int{}}
	streak := 0
	for _, r := range records {
		st.Played++
		if r.Solved() {
			st.Solved++
			st.Distribution[len(r.Guesses)]++
			streak++
			if streak > st.MaxStreak {
				st.MaxStreak = streak
			}
		} else {
			streak = 0
		}
	}
	st.CurrentStreak = streak
	return st
}
