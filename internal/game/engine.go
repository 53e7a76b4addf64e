// internal/game/engine.go
//
// Puzzle oracle: plays the role of the real daily puzzle.
// Responsibilities:
//   - Create games for a known secret with a fixed number of rows.
//   - Validate and apply guesses, returning the feedback pattern.
//   - Score guesses using the classic two-pass algorithm.
//   - Track state transitions: playing → won/lost.
//
// The simulator and the filter's soundness tests use Score as ground truth.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

// DefaultRows is the number of guesses a standard puzzle allows.
const DefaultRows = 6

// ErrFinished is returned when guessing on a game that is over.
var ErrFinished = errors.New("game finished")

// New constructs a game for answer. rows <= 0 uses DefaultRows.
func New(answer solver.Word, rows int) *Game {
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Game{
		ID:      NewID(),
		Answer:  answer,
		Rows:    rows,
		Guesses: []solver.Word{},
	}
}

// ApplyGuess scores guess against the answer and records it. The game is won
// on an all-Correct pattern and lost once every row is used.
func (g *Game) ApplyGuess(guess solver.Word) (solver.Pattern, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	if w, err := solver.ParseWord(string(guess)); err != nil {
		return nil, g.State(), fmt.Errorf("invalid guess: %w", err)
	} else if w != guess {
		return nil, g.State(), fmt.Errorf("invalid guess: %w: %q is not normalized", solver.ErrMalformedWord, string(guess))
	}

	p := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if p.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return p, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Score returns the pattern the puzzle shows for guess against secret.
//
// Exact matches are marked first and removed from the pool of secret
// letters. The remaining guess letters are then scanned left to right; each
// takes one unmatched copy from the pool if any is left (Present) and is
// Absent otherwise. A letter guessed more often than the secret holds it
// therefore gets Present on its earliest positions only.
func Score(secret, guess solver.Word) solver.Pattern {
	n := len(guess)
	res := make(solver.Pattern, n)

	var counts [26]int

	for i := 0; i < n && i < len(secret); i++ {
		if guess[i] == secret[i] {
			res[i] = solver.Correct
		} else if j := idx(secret[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == solver.Correct {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = solver.Present
			counts[j]--
		} else {
			res[i] = solver.Absent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// NewID returns a compact 16-hex-char identifier.
func NewID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
