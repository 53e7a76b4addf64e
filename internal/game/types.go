// internal/game/types.go
//
// Core type definitions for the puzzle oracle.
// Defines:
//   - State: coarse lifecycle of a game (playing/won/lost).
//   - Game: a secret plus the guesses made against it.

package game

import "github.com/robalobadob/wordle-helper/internal/solver"

// State is the lifecycle of a single game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single puzzle being played.
type Game struct {
	ID       string        // Unique game identifier (random hex string).
	Answer   solver.Word   // The secret.
	Rows     int           // Maximum number of guesses allowed (typically 6).
	Guesses  []solver.Word // Guesses made so far.
	Finished bool          // True once the game is over (won or lost).
	Won      bool          // True if the game was finished with a win.
}
