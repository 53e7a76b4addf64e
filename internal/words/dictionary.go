package words

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

// Dictionary is a set of words backed by a patricia trie.
type Dictionary struct {
	trie *patricia.Trie
	n    int
}

// NewDictionary indexes list.
func NewDictionary(list []solver.Word) *Dictionary {
	d := &Dictionary{trie: patricia.NewTrie()}
	for _, w := range list {
		d.Insert(w)
	}
	return d
}

// Insert adds w and reports whether it was new.
func (d *Dictionary) Insert(w solver.Word) bool {
	if d.trie.Insert(patricia.Prefix(w), struct{}{}) {
		d.n++
		return true
	}
	return false
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w solver.Word) bool {
	return d.trie.Match(patricia.Prefix(w))
}

// WithPrefix returns the words starting with prefix, sorted.
func (d *Dictionary) WithPrefix(prefix string) []solver.Word {
	var out []solver.Word
	_ = d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, solver.Word(p))
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return d.n }
