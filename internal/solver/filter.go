// internal/solver/filter.go
//
// Constraint filter: prunes a candidate list given a guess and its pattern.
//
// How a guess is turned into constraints:
//   - Positions are grouped by letter. Each group becomes one letterRule:
//     positions that must hold the letter, positions that must not, and a
//     bound on how many times the letter appears in a surviving word.
//   - RulesGeneral derives the rule from counts for any multiplicity.
//   - RulesPairwise applies the per-position rule to single letters and the
//     fixed pair table to one doubled letter; anything else is rejected.
//
// The guess itself never survives, and survivors keep their input order.

package solver

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Rules selects how repeated letters in a guess are interpreted.
type Rules int

const (
	// RulesGeneral handles any number of repeats per letter by counting
	// Correct and Present marks and capping the count when an Absent appears.
	RulesGeneral Rules = iota
	// RulesPairwise supports at most one letter repeated exactly twice.
	RulesPairwise
)

// ParseRules maps "general" or "pairwise" to Rules.
func ParseRules(s string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general":
		return RulesGeneral, nil
	case "pairwise":
		return RulesPairwise, nil
	}
	return RulesGeneral, fmt.Errorf("unknown rules %q (want general or pairwise)", s)
}

func (r Rules) String() string {
	if r == RulesPairwise {
		return "pairwise"
	}
	return "general"
}

// letterRule constrains one letter of the guess.
type letterRule struct {
	letter byte
	at     []int // positions that must hold letter
	notAt  []int // positions that must not hold letter
	min    int   // minimum occurrences
	exact  bool  // occurrences must equal min
}

func (r letterRule) allows(c Word) bool {
	for _, i := range r.at {
		if c[i] != r.letter {
			return false
		}
	}
	for _, i := range r.notAt {
		if c[i] == r.letter {
			return false
		}
	}
	n := c.Count(r.letter)
	if r.exact {
		return n == r.min
	}
	return n >= r.min
}

// Engine filters candidate lists under a fixed set of Rules.
// The zero value uses RulesGeneral.
type Engine struct {
	rules Rules
}

// NewEngine returns an Engine using rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Rules reports which duplicate-letter rules e applies.
func (e *Engine) Rules() Rules { return e.rules }

var defaultEngine = NewEngine(RulesGeneral)

// Filter prunes candidates with the general rules. See Engine.Filter.
func Filter(candidates []Word, guess Word, p Pattern) ([]Word, error) {
	return defaultEngine.Filter(candidates, guess, p)
}

// Matches reports whether c is consistent with guess and p under the general
// rules. The guess itself is consistent with its own pattern only when the
// pattern is all Correct.
func Matches(c, guess Word, p Pattern) bool {
	if Validate(guess, p) != nil || len(c) != len(guess) {
		return false
	}
	rules, _ := generalRules(guess, p)
	return allows(rules, c)
}

// Filter returns the candidates consistent with guess and p, minus the guess
// itself, in their original order. The input slice is not modified.
// On error nothing is returned and candidates are untouched.
func (e *Engine) Filter(candidates []Word, guess Word, p Pattern) ([]Word, error) {
	keep, err := e.Survivors(candidates, guess, p)
	if err != nil {
		return nil, err
	}
	out := make([]Word, 0, keep.Count())
	for i, ok := keep.NextSet(0); ok; i, ok = keep.NextSet(i + 1) {
		out = append(out, candidates[i])
	}
	return out, nil
}

// Survivors marks, by index into candidates, the words Filter would keep.
func (e *Engine) Survivors(candidates []Word, guess Word, p Pattern) (*bitset.BitSet, error) {
	if err := Validate(guess, p); err != nil {
		return nil, err
	}
	var (
		rules []letterRule
		err   error
	)
	switch e.rules {
	case RulesPairwise:
		rules, err = pairwiseRules(guess, p)
	default:
		rules, err = generalRules(guess, p)
	}
	if err != nil {
		return nil, err
	}

	keep := bitset.New(uint(len(candidates)))
	for i, c := range candidates {
		if c != guess && len(c) == len(guess) && allows(rules, c) {
			keep.Set(uint(i))
		}
	}
	return keep, nil
}

func allows(rules []letterRule, c Word) bool {
	for _, r := range rules {
		if !r.allows(c) {
			return false
		}
	}
	return true
}

// group collects the positions of each letter of guess, in order of first
// appearance.
func group(guess Word) (letters []byte, positions [26][]int) {
	for i := 0; i < len(guess); i++ {
		l := guess[i] - 'a'
		if positions[l] == nil {
			letters = append(letters, guess[i])
		}
		positions[l] = append(positions[l], i)
	}
	return letters, positions
}

// generalRules builds one rule per letter: Correct positions must match,
// Present and Absent positions must not, and the letter count is at least
// the number of Correct and Present marks, exactly that when any Absent
// appears.
func generalRules(guess Word, p Pattern) ([]letterRule, error) {
	letters, positions := group(guess)
	rules := make([]letterRule, 0, len(letters))
	for _, l := range letters {
		r := letterRule{letter: l}
		for _, i := range positions[l-'a'] {
			switch p[i] {
			case Correct:
				r.at = append(r.at, i)
				r.min++
			case Present:
				r.notAt = append(r.notAt, i)
				r.min++
			case Absent:
				r.notAt = append(r.notAt, i)
				r.exact = true
			}
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// pairRule is one row of the doubled-letter table. first and second refer
// to the earlier and later position of the doubled letter.
type pairRule struct {
	firstAt, secondAt       bool
	firstNotAt, secondNotAt bool
	min                     int
	exact                   bool
}

var pairTable = map[[2]Feedback]pairRule{
	{Correct, Correct}: {firstAt: true, secondAt: true, min: 2},
	{Correct, Present}: {firstAt: true, secondNotAt: true, min: 2},
	{Present, Correct}: {firstNotAt: true, secondAt: true, min: 2},
	{Correct, Absent}:  {firstAt: true, min: 1, exact: true},
	{Absent, Correct}:  {secondAt: true, min: 1, exact: true},
	{Present, Present}: {firstNotAt: true, secondNotAt: true, min: 2},
	{Present, Absent}:  {firstNotAt: true, min: 1, exact: true},
	{Absent, Present}:  {secondNotAt: true, min: 1, exact: true},
	{Absent, Absent}:   {min: 0, exact: true},
}

// pairwiseRules applies the single-position rule to letters that occur once
// and the pair table to a single doubled letter.
func pairwiseRules(guess Word, p Pattern) ([]letterRule, error) {
	letters, positions := group(guess)
	doubled := 0
	rules := make([]letterRule, 0, len(letters))
	for _, l := range letters {
		pos := positions[l-'a']
		switch len(pos) {
		case 1:
			rules = append(rules, singleRule(l, pos[0], p[pos[0]]))
		case 2:
			doubled++
			if doubled > 1 {
				return nil, fmt.Errorf("%w: %q repeats more than one letter", ErrUnsupportedDuplicatePattern, string(guess))
			}
			a, b := pos[0], pos[1]
			row := pairTable[[2]Feedback{p[a], p[b]}]
			r := letterRule{letter: l, min: row.min, exact: row.exact}
			if row.firstAt {
				r.at = append(r.at, a)
			}
			if row.secondAt {
				r.at = append(r.at, b)
			}
			if row.firstNotAt {
				r.notAt = append(r.notAt, a)
			}
			if row.secondNotAt {
				r.notAt = append(r.notAt, b)
			}
			rules = append(rules, r)
		default:
			return nil, fmt.Errorf("%w: %q has %d of %q", ErrUnsupportedDuplicatePattern, string(guess), len(pos), l)
		}
	}
	return rules, nil
}

func singleRule(l byte, i int, f Feedback) letterRule {
	switch f {
	case Correct:
		return letterRule{letter: l, at: []int{i}, min: 1}
	case Present:
		return letterRule{letter: l, notAt: []int{i}, min: 1}
	default:
		return letterRule{letter: l, exact: true}
	}
}
