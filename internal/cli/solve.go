package cli

import (
	"strings"

	"github.com/robalobadob/wordle-helper/internal/session"
	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// SolveOptions tunes the interactive loop.
type SolveOptions struct {
	Alternatives int               // extra suggestions shown per round
	Dictionary   *words.Dictionary // optional; unknown guesses get a note
}

// Solve runs the interactive loop until s finishes or input ends.
//
// Each round: suggest a word, ask which word was entered (blank accepts the
// suggestion), ask whether it was the answer, otherwise ask for its colors
// and narrow the candidates.
func Solve(p *Prompter, s *session.Session, opts SolveOptions) error {
	for !s.Finished() {
		best, err := s.Suggest()
		if err != nil {
			p.Printf("Uh-oh. Word list is empty.")
			return nil
		}
		if len(s.Rounds()) > 0 {
			p.Printf("There are %d potential words.", s.Remaining())
		}
		p.Printf("The best word to guess next is: '%s'", best)
		if alts := alternatives(s, best, opts.Alternatives); alts != "" {
			p.Printf("Also worth trying: %s", alts)
		}

		guess, err := askGuess(p, best, len(s.Rounds())+1, opts.Dictionary)
		if err != nil {
			return err
		}
		pattern, err := askPattern(p, guess)
		if err != nil {
			return err
		}
		if _, err := s.Apply(guess, pattern); err != nil {
			p.Printf("Could not use that round: %v", err)
			continue
		}
	}

	n := len(s.Rounds())
	switch s.State() {
	case session.StateSolved:
		p.Printf("Congratulations!\nSolved in %d tries.", n)
	case session.StateExhausted:
		p.Printf("Uh-oh. Word list is empty.")
	case session.StateFailed:
		p.Printf("Out of guesses after %d rounds; %d potential words were left.", n, s.Remaining())
	}
	return nil
}

func askGuess(p *Prompter, best solver.Word, round int, dict *words.Dictionary) (solver.Word, error) {
	for {
		ans, err := p.Ask("What word have you entered? [" + string(best) + "] ")
		if err != nil {
			return "", err
		}
		if ans == "" {
			return best, nil
		}
		w, err := solver.ParseWord(ans)
		if err != nil {
			p.Printf("Round %d: please enter a %d letter word.", round, solver.WordLen)
			continue
		}
		if dict != nil && !dict.Contains(w) {
			p.Printf("Note: '%s' is not in the word list.", w)
			if near := similar(dict, w, maxSimilar); len(near) > 0 {
				p.Printf("Did you mean: %s?", strings.Join(near, ", "))
			}
		}
		return w, nil
	}
}

func askPattern(p *Prompter, guess solver.Word) (solver.Pattern, error) {
	for {
		ans, err := p.Ask("Was '" + string(guess) + "' the word (y/n)? ")
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(ans) {
		case "y", "yes":
			return solvedPattern(len(guess)), nil
		case "n", "no":
		default:
			continue
		}
		for {
			ans, err := p.Ask("Please enter the colors of the word (e.g. gbbyg): ")
			if err != nil {
				return nil, err
			}
			pattern, err := solver.ParsePattern(ans)
			if err != nil {
				p.Printf("Colors must be %d of g, y or b.", solver.WordLen)
				continue
			}
			return pattern, nil
		}
	}
}

const maxSimilar = 5

// similar returns up to n dictionary words sharing the longest prefix with w,
// looking no shorter than two letters.
func similar(dict *words.Dictionary, w solver.Word, n int) []string {
	for l := len(w) - 1; l >= 2; l-- {
		matches := dict.WithPrefix(string(w[:l]))
		if len(matches) == 0 {
			continue
		}
		if len(matches) > n {
			matches = matches[:n]
		}
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = string(m)
		}
		return out
	}
	return nil
}

func solvedPattern(n int) solver.Pattern {
	p := make(solver.Pattern, n)
	for i := range p {
		p[i] = solver.Correct
	}
	return p
}

func alternatives(s *session.Session, best solver.Word, n int) string {
	if n <= 0 {
		return ""
	}
	var out []string
	for _, r := range s.Alternatives(n + 1) {
		if r.Word != best && len(out) < n {
			out = append(out, string(r.Word))
		}
	}
	return strings.Join(out, ", ")
}
