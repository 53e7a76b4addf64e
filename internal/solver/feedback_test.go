package solver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePattern(t *testing.T) {
	cases := []struct {
		in   string
		want Pattern
		err  error
	}{
		{"gybbg", Pattern{Correct, Present, Absent, Absent, Correct}, nil},
		{"G Y B B G", Pattern{Correct, Present, Absent, Absent, Correct}, nil},
		{"b,b,y,b,g", Pattern{Absent, Absent, Present, Absent, Correct}, nil},
		{"gyb", nil, ErrMalformedFeedback},
		{"gybbgg", nil, ErrMalformedFeedback},
		{"gyxbg", nil, ErrMalformedFeedback},
		{"", nil, ErrMalformedFeedback},
	}
	for _, tc := range cases {
		got, err := ParsePattern(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("ParsePattern(%q) err = %v, want %v", tc.in, err, tc.err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParsePattern(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestPatternString(t *testing.T) {
	p, err := ParsePattern("GYBBG")
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "gybbg" {
		t.Fatalf("String() = %q", p.String())
	}
	if p.Solved() {
		t.Fatal("gybbg reported solved")
	}
	if !(Pattern{Correct, Correct, Correct, Correct, Correct}).Solved() {
		t.Fatal("ggggg not solved")
	}
	if (Pattern{}).Solved() {
		t.Fatal("empty pattern solved")
	}
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord("  Crane\n")
	if err != nil || w != "crane" {
		t.Fatalf("ParseWord = %q, %v", w, err)
	}
	for _, bad := range []string{"cran", "cranes", "cr4ne", "crâne", ""} {
		if _, err := ParseWord(bad); !errors.Is(err, ErrMalformedWord) {
			t.Errorf("ParseWord(%q) err = %v, want ErrMalformedWord", bad, err)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("crane", Pattern{Correct, Absent, Absent, Absent}); !errors.Is(err, ErrMalformedFeedback) {
		t.Fatalf("short pattern: %v", err)
	}
	if err := Validate("crane", Pattern{Correct, 0, Absent, Absent, Absent}); !errors.Is(err, ErrMalformedFeedback) {
		t.Fatalf("zero symbol: %v", err)
	}
	if err := Validate("CRANE", Pattern{Correct, Absent, Absent, Absent, Absent}); !errors.Is(err, ErrMalformedWord) {
		t.Fatalf("uppercase guess: %v", err)
	}
}
