// Package simulate plays the solver against known secrets, using the game
// oracle for feedback, and summarizes how it did.
package simulate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/session"
	"github.com/robalobadob/wordle-helper/internal/solver"
)

// Options tunes a simulation run.
type Options struct {
	MaxRounds int
	Engine    *solver.Engine
	Opener    solver.Word // fixed first guess; empty means the best-scoring word
}

// Result is the outcome of one game.
type Result struct {
	GameID     string
	Secret     solver.Word
	Guesses    []solver.Word
	State      session.State
	StartedAt  time.Time
	FinishedAt time.Time
}

// Summary aggregates results.
type Summary struct {
	Played     int
	Solved     int
	MeanRounds float64     // over solved games
	Histogram  map[int]int // rounds → solved games
	Unsolved   []solver.Word
}

// Play runs one game against secret.
func Play(list []solver.Word, secret solver.Word, opts Options) (Result, error) {
	g := game.New(secret, opts.MaxRounds)
	s := session.New(list, session.WithMaxRounds(g.Rows), session.WithEngine(opts.Engine))
	res := Result{GameID: g.ID, Secret: secret, StartedAt: time.Now().UTC()}

	guess := opts.Opener
	if guess == "" {
		var err error
		if guess, err = s.Suggest(); err != nil {
			return res, err
		}
	}
	for {
		p, _, err := g.ApplyGuess(guess)
		if err != nil {
			return res, fmt.Errorf("game %s: %w", g.ID, err)
		}
		r, err := s.Apply(guess, p)
		if err != nil {
			return res, fmt.Errorf("game %s: %w", g.ID, err)
		}
		if s.Finished() {
			break
		}
		guess = r.Next
	}
	res.Guesses = s.Guesses()
	res.State = s.State()
	res.FinishedAt = time.Now().UTC()
	return res, nil
}

// Run plays every secret in order. It stops early, returning what it has,
// when ctx is cancelled or a game fails with an error.
func Run(ctx context.Context, list, secrets []solver.Word, opts Options) ([]Result, Summary, error) {
	results := make([]Result, 0, len(secrets))
	for _, secret := range secrets {
		if err := ctx.Err(); err != nil {
			return results, Summarize(results), err
		}
		r, err := Play(list, secret, opts)
		if err != nil {
			return results, Summarize(results), err
		}
		log.Debug().
			Str("secret", string(secret)).
			Str("state", string(r.State)).
			Int("rounds", len(r.Guesses)).
			Msg("simulated game")
		results = append(results, r)
	}
	return results, Summarize(results), nil
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	sum := Summary{Histogram: map[int]int{}}
	total := 0
	for _, r := range results {
		sum.Played++
		if r.State == session.StateSolved {
			sum.Solved++
			sum.Histogram[len(r.Guesses)]++
			total += len(r.Guesses)
		} else {
			sum.Unsolved = append(sum.Unsolved, r.Secret)
		}
	}
	if sum.Solved > 0 {
		sum.MeanRounds = float64(total) / float64(sum.Solved)
	}
	return sum
}
