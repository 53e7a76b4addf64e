package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScoreDistinctLetters(t *testing.T) {
	if got, want := Score("eerie"), 56.88+38.45+38.64; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Score(eerie) = %v, want %v", got, want)
	}
	if Score("stare") != Score("tears") {
		t.Fatalf("anagrams scored differently: %v vs %v", Score("stare"), Score("tears"))
	}
	if Score("sassy") != Score("says") {
		t.Fatal("repeats should not add weight")
	}
	if Score("arise") <= Score("fuzzy") {
		t.Fatal("common letters should outscore rare ones")
	}
}

func TestBest(t *testing.T) {
	cases := []struct {
		name string
		in   []Word
		want Word
	}{
		{"single", []Word{"fuzzy"}, "fuzzy"},
		{"max", []Word{"fuzzy", "arise", "jumpy"}, "arise"},
		{"tie keeps first", []Word{"jumpy", "tears", "stare", "rates"}, "tears"},
		{"repeats lose", []Word{"eerie", "eared"}, "eared"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Best(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("Best = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBestEmpty(t *testing.T) {
	if _, err := Best(nil); !errors.Is(err, ErrEmptyCandidateSet) {
		t.Fatalf("Best(nil) err = %v", err)
	}
}

func TestRank(t *testing.T) {
	in := []Word{"fuzzy", "stare", "jumpy", "tears", "arise"}
	got := Rank(in, 3)
	words := make([]Word, len(got))
	for i, r := range got {
		words[i] = r.Word
	}
	if diff := cmp.Diff([]Word{"arise", "stare", "tears"}, words); diff != "" {
		t.Fatalf("Rank mismatch (-want +got):\n%s", diff)
	}
	if all := Rank(in, 0); len(all) != len(in) {
		t.Fatalf("Rank(n=0) returned %d of %d", len(all), len(in))
	}
}
