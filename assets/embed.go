// Package assets embeds the default candidate word list.
package assets

import (
	"embed"
	"io/fs"
)

// WordListName is the embedded list used when no word list file is
// configured. It is kept sorted, one word per line; '#' starts a comment.
const WordListName = "word_list.txt"

//go:embed word_list.txt
var files embed.FS

// OpenWordList opens the embedded default list.
func OpenWordList() (fs.File, error) {
	return files.Open(WordListName)
}
