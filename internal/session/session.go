// internal/session/session.go
//
// A solving session: the rounds played against one secret and the candidate
// list they leave behind.
//
// State transitions:
//   - all-Correct pattern        → solved (the filter is not consulted)
//   - filter leaves no candidates → exhausted
//   - MaxRounds reached unsolved  → failed
//
// A failed Apply (malformed input, unsupported pattern) records nothing and
// leaves the candidate list as it was.

package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

// DefaultMaxRounds is the number of guesses the daily puzzle allows.
const DefaultMaxRounds = 6

// ErrFinished is returned by Apply once the session is over.
var ErrFinished = errors.New("session finished")

// State is the lifecycle of a session.
type State string

const (
	StatePlaying   State = "playing"
	StateSolved    State = "solved"
	StateExhausted State = "exhausted"
	StateFailed    State = "failed"
)

// Round is one guess, its feedback and what the filter left.
type Round struct {
	Guess     solver.Word
	Pattern   solver.Pattern
	Remaining int         // candidates left after this round
	Next      solver.Word // best next guess, empty when none remain or solved
}

// Session owns a candidate list across rounds. Not safe for concurrent use.
type Session struct {
	candidates []solver.Word
	rounds     []Round
	state      State
	maxRounds  int
	engine     *solver.Engine
}

// Option configures a Session.
type Option func(*Session)

// WithMaxRounds caps the number of rounds. n <= 0 keeps the default.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

// WithEngine sets the filter engine (and so its duplicate-letter rules).
func WithEngine(e *solver.Engine) Option {
	return func(s *Session) {
		if e != nil {
			s.engine = e
		}
	}
}

// New starts a session over a copy of candidates.
func New(candidates []solver.Word, opts ...Option) *Session {
	s := &Session{
		candidates: slices.Clone(candidates),
		state:      StatePlaying,
		maxRounds:  DefaultMaxRounds,
		engine:     solver.NewEngine(solver.RulesGeneral),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Suggest returns the best guess among the remaining candidates.
func (s *Session) Suggest() (solver.Word, error) {
	return solver.Best(s.candidates)
}

// Alternatives returns the top n remaining candidates by score.
func (s *Session) Alternatives(n int) []solver.Ranked {
	return solver.Rank(s.candidates, n)
}

// Apply records the feedback p for guess and narrows the candidates.
func (s *Session) Apply(guess solver.Word, p solver.Pattern) (Round, error) {
	if s.Finished() {
		return Round{}, ErrFinished
	}
	if err := solver.Validate(guess, p); err != nil {
		return Round{}, err
	}

	if p.Solved() {
		r := Round{Guess: guess, Pattern: slices.Clone(p), Remaining: 1}
		s.rounds = append(s.rounds, r)
		s.candidates = []solver.Word{guess}
		s.state = StateSolved
		log.Debug().Str("guess", string(guess)).Int("round", len(s.rounds)).Msg("solved")
		return r, nil
	}

	next, err := s.engine.Filter(s.candidates, guess, p)
	if err != nil {
		return Round{}, fmt.Errorf("round %d: %w", len(s.rounds)+1, err)
	}
	before := len(s.candidates)
	s.candidates = next

	r := Round{Guess: guess, Pattern: slices.Clone(p), Remaining: len(next)}
	if best, err := solver.Best(next); err == nil {
		r.Next = best
	}
	s.rounds = append(s.rounds, r)

	switch {
	case len(next) == 0:
		s.state = StateExhausted
	case len(s.rounds) >= s.maxRounds:
		s.state = StateFailed
	}

	log.Debug().
		Str("guess", string(guess)).
		Str("pattern", p.String()).
		Int("round", len(s.rounds)).
		Int("before", before).
		Int("after", len(next)).
		Str("state", string(s.state)).
		Msg("filtered candidates")
	return r, nil
}

// Candidates returns a copy of the remaining candidates.
func (s *Session) Candidates() []solver.Word { return slices.Clone(s.candidates) }

// Remaining returns how many candidates are left.
func (s *Session) Remaining() int { return len(s.candidates) }

// Rounds returns a copy of the rounds played so far.
func (s *Session) Rounds() []Round { return slices.Clone(s.rounds) }

// Guesses returns the guesses played so far, in order.
func (s *Session) Guesses() []solver.Word {
	out := make([]solver.Word, len(s.rounds))
	for i, r := range s.rounds {
		out[i] = r.Guess
	}
	return out
}

// State reports the lifecycle state.
func (s *Session) State() State { return s.state }

// Finished reports whether no further rounds can be played.
func (s *Session) Finished() bool { return s.state != StatePlaying }

// MaxRounds returns the round limit.
func (s *Session) MaxRounds() int { return s.maxRounds }
