package words

import (
	"slices"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

// InsertResult reports which words an Insert added and which it refused.
type InsertResult struct {
	Inserted []string
	Rejected []string
}

// Insert adds words to list, each before the first entry that sorts after
// it, so a sorted list stays sorted. Words already present, or not valid
// puzzle words, are rejected. list is not modified.
func Insert(list []solver.Word, words ...string) ([]solver.Word, InsertResult) {
	var res InsertResult
	out := slices.Clone(list)
	dict := NewDictionary(out)
	for _, raw := range words {
		w, err := solver.ParseWord(raw)
		if err != nil || !dict.Insert(w) {
			res.Rejected = append(res.Rejected, raw)
			continue
		}
		i := slices.IndexFunc(out, func(x solver.Word) bool { return w < x })
		if i < 0 {
			i = len(out)
		}
		out = slices.Insert(out, i, w)
		res.Inserted = append(res.Inserted, string(w))
	}
	return out, res
}

// InsertLines is Insert over the raw lines of a text list. Comments, blank
// lines and entries that are not puzzle words are kept where they are and
// ignored when looking for duplicates and the insert position. lines is not
// modified.
func InsertLines(lines []string, words ...string) ([]string, InsertResult) {
	var res InsertResult
	out := slices.Clone(lines)
	existing, _ := normalize(out)
	dict := NewDictionary(existing)
	for _, raw := range words {
		w, err := solver.ParseWord(raw)
		if err != nil || !dict.Insert(w) {
			res.Rejected = append(res.Rejected, raw)
			continue
		}
		i := slices.IndexFunc(out, func(line string) bool {
			x, err := solver.ParseWord(line)
			return err == nil && w < x
		})
		if i < 0 {
			i = len(out)
		}
		out = slices.Insert(out, i, string(w))
		res.Inserted = append(res.Inserted, string(w))
	}
	return out, res
}

// Trim keeps only the lines that are exactly n bytes long.
func Trim(lines []string, n int) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if len(l) == n {
			out = append(out, l)
		}
	}
	return out
}
