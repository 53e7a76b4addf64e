package solver

import (
	"cmp"
	"slices"
)

// weights holds English letter frequency per letter, indexed by letter-'a'.
var weights = [26]float64{
	'a' - 'a': 43.31, 'b' - 'a': 10.56, 'c' - 'a': 23.13, 'd' - 'a': 17.25,
	'e' - 'a': 56.88, 'f' - 'a': 9.24, 'g' - 'a': 12.59, 'h' - 'a': 15.31,
	'i' - 'a': 38.45, 'j' - 'a': 1.00, 'k' - 'a': 5.61, 'l' - 'a': 27.98,
	'm' - 'a': 15.36, 'n' - 'a': 33.92, 'o' - 'a': 36.51, 'p' - 'a': 16.14,
	'q' - 'a': 1.00, 'r' - 'a': 38.64, 's' - 'a': 29.23, 't' - 'a': 35.43,
	'u' - 'a': 18.51, 'v' - 'a': 5.13, 'w' - 'a': 6.57, 'x' - 'a': 1.48,
	'y' - 'a': 9.06, 'z' - 'a': 1.39,
}

// Score sums the frequency weight of each distinct letter in w. A repeated
// letter counts once, so words covering more common letters score higher.
// Weights are summed in alphabet order, so anagrams score identically.
func Score(w Word) float64 {
	var seen uint32
	for i := 0; i < len(w); i++ {
		if c := w[i]; c >= 'a' && c <= 'z' {
			seen |= 1 << (c - 'a')
		}
	}
	score := 0.0
	for l := 0; seen != 0; l, seen = l+1, seen>>1 {
		if seen&1 != 0 {
			score += weights[l]
		}
	}
	return score
}

// Best returns the highest scoring candidate. Ties go to the candidate that
// appears first. An empty list yields ErrEmptyCandidateSet.
func Best(candidates []Word) (Word, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidateSet
	}
	best, bestScore := candidates[0], Score(candidates[0])
	for _, c := range candidates[1:] {
		if s := Score(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, nil
}

// Ranked is a candidate together with its score.
type Ranked struct {
	Word  Word
	Score float64
}

// Rank returns up to n candidates ordered by descending score, keeping list
// order among equal scores. n <= 0 returns every candidate.
func Rank(candidates []Word, n int) []Ranked {
	out := make([]Ranked, len(candidates))
	for i, c := range candidates {
		out[i] = Ranked{Word: c, Score: Score(c)}
	}
	slices.SortStableFunc(out, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
