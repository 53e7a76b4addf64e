package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/wordle-helper/internal/session"
	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/words"
)

var list = []solver.Word{"roast", "brash", "react", "dwarf", "trash", "quart", "crane", "stair", "mango"}

func run(t *testing.T, input string, s *session.Session, opts SolveOptions) (string, error) {
	t.Helper()
	var out strings.Builder
	err := Solve(NewPrompter(strings.NewReader(input), &out), s, opts)
	return out.String(), err
}

func TestSolveToAnswer(t *testing.T) {
	s := session.New(list)
	// crane → bygbb leaves roast, dwarf, quart, stair; then quart is right.
	out, err := run(t, "crane\nn\nbygbb\nquart\ny\n", s, SolveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != session.StateSolved {
		t.Fatalf("state = %s\n%s", s.State(), out)
	}
	for _, want := range []string{"There are 4 potential words.", "Solved in 2 tries."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveRetriesBadInput(t *testing.T) {
	s := session.New(list)
	in := "cr\nzzzzz\nmaybe\nn\ngyb\nbbbbb\n"
	out, err := run(t, in, s, SolveOptions{Dictionary: words.NewDictionary(list)})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("err = %v", err)
	}
	for _, want := range []string{
		"please enter a 5 letter word",
		"'zzzzz' is not in the word list",
		"Colors must be 5 of g, y or b.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if len(s.Rounds()) != 1 || s.Rounds()[0].Guess != "zzzzz" {
		t.Fatalf("rounds = %+v", s.Rounds())
	}
}

func TestSolveSuggestsKnownWords(t *testing.T) {
	s := session.New(list)
	// every listed word shares a letter with trask, so the list empties
	out, err := run(t, "trask\nn\nbbbbb\n", s, SolveOptions{Dictionary: words.NewDictionary(list)})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"'trask' is not in the word list", "Did you mean: trash?"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimilar(t *testing.T) {
	d := words.NewDictionary(list)
	tests := []struct {
		w    solver.Word
		want []string
	}{
		{"crank", []string{"crane"}},
		{"rxxxx", nil},
		{"stxxx", []string{"stair"}},
		{"brxxx", []string{"brash"}},
		{"zzzzz", nil},
	}
	for _, tt := range tests {
		got := similar(d, tt.w, maxSimilar)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("similar(%s) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestSolveBlankAcceptsSuggestion(t *testing.T) {
	s := session.New(list)
	best, _ := s.Suggest()
	if _, err := run(t, "\ny\n", s, SolveOptions{Alternatives: 2}); err != nil {
		t.Fatal(err)
	}
	if g := s.Guesses(); len(g) != 1 || g[0] != best {
		t.Fatalf("guesses = %v, want [%s]", g, best)
	}
}

func TestSolveExhausted(t *testing.T) {
	s := session.New([]solver.Word{"apple", "angle", "ankle", "ample"})
	out, err := run(t, "apple\nn\ngybbg\n", s, SolveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != session.StateExhausted || !strings.Contains(out, "Word list is empty") {
		t.Fatalf("state = %s\n%s", s.State(), out)
	}
}

func TestSolveReportsUnsupportedRound(t *testing.T) {
	s := session.New(list, session.WithEngine(solver.NewEngine(solver.RulesPairwise)))
	out, err := run(t, "eerie\nn\nbbbbb\n", s, SolveOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "Could not use that round") || len(s.Rounds()) != 0 {
		t.Fatalf("output:\n%s", out)
	}
}
