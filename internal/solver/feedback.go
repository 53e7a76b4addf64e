// internal/solver/feedback.go
//
// Feedback symbols and patterns.
//
// Wire form (what a user relays from the puzzle):
//   g → Correct   letter is in the secret at this position
//   y → Present   letter is in the secret elsewhere
//   b → Absent    letter is not in the secret (subject to duplicate rules)
//
// The zero Feedback is invalid so an unset slot is caught by Validate.

package solver

import (
	"fmt"
	"strings"
)

// Feedback is the puzzle's verdict for one letter of a guess.
type Feedback uint8

const (
	invalidFeedback Feedback = iota
	Absent
	Present
	Correct
)

// ParseFeedback maps g/y/b (any case) to a Feedback.
func ParseFeedback(r rune) (Feedback, error) {
	switch r {
	case 'g', 'G':
		return Correct, nil
	case 'y', 'Y':
		return Present, nil
	case 'b', 'B':
		return Absent, nil
	}
	return invalidFeedback, fmt.Errorf("%w: unknown symbol %q", ErrMalformedFeedback, r)
}

func (f Feedback) valid() bool { return f >= Absent && f <= Correct }

// Char returns the single-letter wire form of f, or '?' if f is invalid.
func (f Feedback) Char() byte {
	switch f {
	case Correct:
		return 'g'
	case Present:
		return 'y'
	case Absent:
		return 'b'
	}
	return '?'
}

func (f Feedback) String() string {
	switch f {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return "invalid"
}

// Pattern is the feedback vector for a whole guess, one symbol per position.
type Pattern []Feedback

// ParsePattern reads a pattern such as "gybbg". Spaces, tabs and commas are
// ignored so "g y b b g" and "g,y,b,b,g" are accepted too.
func ParsePattern(s string) (Pattern, error) {
	p := make(Pattern, 0, WordLen)
	for _, r := range s {
		switch r {
		case ' ', '\t', ',':
			continue
		}
		f, err := ParseFeedback(r)
		if err != nil {
			return nil, err
		}
		p = append(p, f)
	}
	if len(p) != WordLen {
		return nil, fmt.Errorf("%w: want %d symbols, got %d", ErrMalformedFeedback, WordLen, len(p))
	}
	return p, nil
}

// Solved reports whether every symbol is Correct.
func (p Pattern) Solved() bool {
	if len(p) == 0 {
		return false
	}
	for _, f := range p {
		if f != Correct {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, f := range p {
		b.WriteByte(f.Char())
	}
	return b.String()
}

// Validate checks that guess is a well-formed Word and that p holds exactly
// one valid symbol per letter of guess.
func Validate(guess Word, p Pattern) error {
	if !valid(string(guess)) {
		return fmt.Errorf("%w: %q", ErrMalformedWord, string(guess))
	}
	if len(p) != len(guess) {
		return fmt.Errorf("%w: %d symbols for %d letters", ErrMalformedFeedback, len(p), len(guess))
	}
	for i, f := range p {
		if !f.valid() {
			return fmt.Errorf("%w: invalid symbol at position %d", ErrMalformedFeedback, i)
		}
	}
	return nil
}
