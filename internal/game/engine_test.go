package game

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

func TestScore(t *testing.T) {
	cases := []struct {
		secret, guess solver.Word
		want          string
	}{
		{"crane", "crane", "ggggg"},
		{"crane", "stare", "bbgyg"},
		{"sheep", "eerie", "yybbb"},
		{"abbey", "kebab", "bygyy"},
		{"abbey", "babes", "yyggb"},
		{"apple", "paper", "yygyb"},
		{"erupt", "sleet", "bbybg"},
		{"those", "geese", "bbbgg"},
	}
	for _, tc := range cases {
		if got := Score(tc.secret, tc.guess).String(); got != tc.want {
			t.Errorf("Score(%s, %s) = %s, want %s", tc.secret, tc.guess, got, tc.want)
		}
	}
}

func TestApplyGuessStates(t *testing.T) {
	g := New("crane", 2)
	if g.State() != StatePlaying {
		t.Fatalf("new game state = %s", g.State())
	}
	p, st, err := g.ApplyGuess("stare")
	if err != nil {
		t.Fatal(err)
	}
	if p.Solved() || st != StatePlaying {
		t.Fatalf("after miss: %s %s", p, st)
	}
	_, st, err = g.ApplyGuess("slate")
	if err != nil {
		t.Fatal(err)
	}
	if st != StateLost {
		t.Fatalf("after last row: %s", st)
	}
	if _, _, err := g.ApplyGuess("crane"); !errors.Is(err, ErrFinished) {
		t.Fatalf("guess after finish err = %v", err)
	}
}

func TestApplyGuessWin(t *testing.T) {
	g := New("crane", 0)
	if g.Rows != DefaultRows {
		t.Fatalf("rows = %d", g.Rows)
	}
	if _, st, err := g.ApplyGuess("crane"); err != nil || st != StateWon {
		t.Fatalf("win: %s %v", st, err)
	}
}

func TestApplyGuessInvalid(t *testing.T) {
	g := New("crane", 0)
	for _, bad := range []solver.Word{"cran", "CRANE", "cr4ne"} {
		if _, _, err := g.ApplyGuess(bad); !errors.Is(err, solver.ErrMalformedWord) {
			t.Errorf("ApplyGuess(%q) err = %v", bad, err)
		}
	}
	if len(g.Guesses) != 0 {
		t.Fatalf("invalid guesses recorded: %v", g.Guesses)
	}
}
