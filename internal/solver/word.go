// internal/solver/word.go
//
// Word is the unit the engine filters and scores.
//
// Constraints:
//   • exactly WordLen bytes
//   • lowercase ASCII a–z only
//
// ParseWord is the only validating constructor; Word literals are trusted.

package solver

import (
	"fmt"
	"strings"
)

// WordLen is the number of letters in a puzzle word.
const WordLen = 5

// Word is a validated puzzle word.
type Word string

// ParseWord trims and lowercases s and checks it is a valid Word.
func ParseWord(s string) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if !valid(w) {
		return "", fmt.Errorf("%w: %q", ErrMalformedWord, s)
	}
	return Word(w), nil
}

// ParseWords parses every entry of ss, stopping at the first invalid one.
func ParseWords(ss ...string) ([]Word, error) {
	out := make([]Word, 0, len(ss))
	for _, s := range ss {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (w Word) String() string { return string(w) }

// Count returns how many times letter occurs in w.
func (w Word) Count(letter byte) int {
	n := 0
	for i := 0; i < len(w); i++ {
		if w[i] == letter {
			n++
		}
	}
	return n
}

// Contains reports whether letter occurs anywhere in w.
func (w Word) Contains(letter byte) bool {
	return strings.IndexByte(string(w), letter) >= 0
}

func valid(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
