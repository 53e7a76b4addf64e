package solver

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustPattern(t *testing.T, s string) Pattern {
	t.Helper()
	p, err := ParsePattern(s)
	if err != nil {
		t.Fatalf("ParsePattern(%q): %v", s, err)
	}
	return p
}

func TestFilterSingleLetters(t *testing.T) {
	in := []Word{"roast", "brash", "react", "dwarf", "trash", "quart", "crane", "stair", "mango"}
	got, err := Filter(in, "crane", mustPattern(t, "bygbb"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Word{"roast", "dwarf", "quart", "stair"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}

var sleetCandidates = []Word{
	"sleet", "sheet", "tweet", "eject", "event", "greet", "great", "adept", "inept",
	"quiet", "comet", "crept", "count", "pleat", "toast", "depth", "hotel", "erupt", "beget",
}

func TestFilterDoubledLetterAbsentCap(t *testing.T) {
	// e at positions 2 and 3: one copy in the secret, not at 2, and not at 3
	// either since that tile would have been green.
	got, err := Filter(sleetCandidates, "sleet", mustPattern(t, "bbybg"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Word{"erupt"}, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestPairwiseDoubledLetter(t *testing.T) {
	got, err := NewEngine(RulesPairwise).Filter(sleetCandidates, "sleet", mustPattern(t, "bbybg"))
	if err != nil {
		t.Fatal(err)
	}
	// The pair table only excludes the Present position.
	if diff := cmp.Diff([]Word{"quiet", "comet", "erupt"}, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestPairTableRows(t *testing.T) {
	// "steep" doubles e at 2 and 3.
	cands := []Word{"sheep", "steed", "stole", "spend", "stork", "sweep", "tepee", "steel", "seeps"}
	cases := []struct {
		pattern string
		want    []Word
	}{
		// s, t correct; p absent; varies on the doubled e.
		{"ggggb", []Word{"steed", "steel"}},
		{"ggbgb", nil},
		{"ggyyb", nil},
		{"ggbbb", []Word{"stork"}},
		{"ggybb", []Word{"stole"}},
	}
	for _, tc := range cases {
		for _, e := range []*Engine{NewEngine(RulesGeneral), NewEngine(RulesPairwise)} {
			got, err := e.Filter(cands, "steep", mustPattern(t, tc.pattern))
			if err != nil {
				t.Fatalf("%s %s: %v", e.Rules(), tc.pattern, err)
			}
			if diff := cmp.Diff(tc.want, got, equalWords); diff != "" {
				t.Errorf("%s %s mismatch (-want +got):\n%s", e.Rules(), tc.pattern, diff)
			}
		}
	}
}

var equalWords = cmp.Comparer(func(a, b []Word) bool {
	return slices.Equal(a, b)
})

func TestFilterAppleScenario(t *testing.T) {
	in := []Word{"apple", "angle", "ankle", "ample"}
	got, err := Filter(in, "apple", mustPattern(t, "gybbg"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("Filter = %v, want empty", got)
	}
	if _, err := Best(got); !errors.Is(err, ErrEmptyCandidateSet) {
		t.Fatalf("Best after exhaustion err = %v", err)
	}
}

func TestFilterAllCorrectDropsGuess(t *testing.T) {
	in := []Word{"stare", "crane", "tears"}
	got, err := Filter(in, "crane", mustPattern(t, "ggggg"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("Filter = %v, want empty", got)
	}
}

func TestFilterMalformed(t *testing.T) {
	in := []Word{"stare", "crane", "tears"}
	orig := slices.Clone(in)
	if _, err := Filter(in, "crane", Pattern{Correct, Absent}); !errors.Is(err, ErrMalformedFeedback) {
		t.Fatalf("short pattern err = %v", err)
	}
	if _, err := Filter(in, "cran", Pattern{Correct, Absent, Absent, Absent}); !errors.Is(err, ErrMalformedWord) {
		t.Fatalf("short guess err = %v", err)
	}
	if diff := cmp.Diff(orig, in); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestSurvivorsMatchFilter(t *testing.T) {
	in := []Word{"roast", "brash", "quart", "crane", "trash"}
	p := mustPattern(t, "bygbb")
	for _, rules := range []Rules{RulesGeneral, RulesPairwise} {
		e := NewEngine(rules)
		keep, err := e.Survivors(in, "crane", p)
		if err != nil {
			t.Fatal(err)
		}
		var marked []uint
		for i, ok := keep.NextSet(0); ok; i, ok = keep.NextSet(i + 1) {
			marked = append(marked, i)
		}
		if diff := cmp.Diff([]uint{0, 2}, marked); diff != "" {
			t.Errorf("%s: survivors (-want +got):\n%s", rules, diff)
		}
		got, err := e.Filter(in, "crane", p)
		if err != nil {
			t.Fatal(err)
		}
		if uint(len(got)) != keep.Count() || keep.Count() >= uint(len(in)) {
			t.Errorf("%s: Filter kept %d, survivors %d, input %d", rules, len(got), keep.Count(), len(in))
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := []Word{"roast", "brash", "quart"}
	orig := slices.Clone(in)
	if _, err := Filter(in, "crane", mustPattern(t, "bygbb")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig, in); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestFilterDropsWrongLength(t *testing.T) {
	got, err := Filter([]Word{"roast", "roasts", "quart"}, "crane", mustPattern(t, "bygbb"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Word{"roast", "quart"}, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestPairwiseUnsupported(t *testing.T) {
	e := NewEngine(RulesPairwise)
	for _, g := range []Word{"eerie", "llama", "geese"} {
		if _, err := e.Filter([]Word{"crane"}, g, mustPattern(t, "bbbbb")); !errors.Is(err, ErrUnsupportedDuplicatePattern) {
			t.Errorf("%s: err = %v, want ErrUnsupportedDuplicatePattern", g, err)
		}
		if _, err := Filter([]Word{"crane"}, g, mustPattern(t, "bbbbb")); err != nil {
			t.Errorf("%s: general rules err = %v", g, err)
		}
	}
}

func TestFilterTripleLetter(t *testing.T) {
	// "eerie" against the secret "sheep": two e in the secret, neither
	// aligned, so the first two e are present and the third absent.
	in := []Word{"sheep", "steep", "egret", "emcee", "tepee", "eerie"}
	got, err := Filter(in, "eerie", mustPattern(t, "yybbb"))
	if err != nil {
		t.Fatal(err)
	}
	// exactly two e, none at 0, 1 or 4, no r or i.
	if diff := cmp.Diff([]Word{"sheep", "steep"}, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestMatches(t *testing.T) {
	p := mustPattern(t, "bygbb")
	if !Matches("roast", "crane", p) {
		t.Fatal("roast should match")
	}
	if Matches("brash", "crane", p) {
		t.Fatal("brash should not match")
	}
	if Matches("crane", "crane", p) {
		t.Fatal("the guess only matches an all-correct pattern")
	}
	if !Matches("crane", "crane", mustPattern(t, "ggggg")) {
		t.Fatal("the guess matches its all-correct pattern")
	}
}

func TestParseRules(t *testing.T) {
	for in, want := range map[string]Rules{"": RulesGeneral, "general": RulesGeneral, "Pairwise": RulesPairwise} {
		got, err := ParseRules(in)
		if err != nil || got != want {
			t.Errorf("ParseRules(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseRules("fuzzy"); err == nil {
		t.Error("ParseRules(fuzzy) should fail")
	}
}
