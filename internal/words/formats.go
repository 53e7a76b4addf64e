package words

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

// Format is an on-disk word list format.
type Format int

const (
	FormatUnknown Format = iota
	FormatText           // one word per line (.txt)
	FormatBinary         // msgpack-encoded compiled list (.bin)
)

// binaryVersion is bumped whenever compiledList changes shape.
const binaryVersion = 1

var (
	// ErrUnknownFormat is returned for paths whose extension is not .txt or .bin.
	ErrUnknownFormat = errors.New("unknown word list format")
	// ErrBinaryVersion is returned for compiled lists from another version.
	ErrBinaryVersion = errors.New("unsupported compiled word list version")
)

// compiledList is the msgpack payload of a .bin word list.
type compiledList struct {
	Version int      `msgpack:"v"`
	WordLen int      `msgpack:"len"`
	Words   []string `msgpack:"words"`
}

// FormatOf picks a format from the path's extension. Files with no
// extension are treated as text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", "":
		return FormatText
	case ".bin":
		return FormatBinary
	}
	return FormatUnknown
}

func loadBinary(path string) ([]solver.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read compiled word list: %w", err)
	}
	var c compiledList
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if c.Version != binaryVersion || c.WordLen != solver.WordLen {
		return nil, fmt.Errorf("%s: %w (version %d, length %d)", path, ErrBinaryVersion, c.Version, c.WordLen)
	}
	list, st := normalize(c.Words)
	logStats(path, st)
	return list, nil
}

// WriteBinary compiles list into a msgpack file at path.
func WriteBinary(path string, list []solver.Word) error {
	c := compiledList{
		Version: binaryVersion,
		WordLen: solver.WordLen,
		Words:   make([]string, len(list)),
	}
	for i, w := range list {
		c.Words[i] = string(w)
	}
	data, err := msgpack.Marshal(&c)
	if err != nil {
		return fmt.Errorf("encode word list: %w", err)
	}
	return writeFile(path, data)
}

// WriteText writes one entry per line to path.
func WriteText(path string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return writeFile(path, []byte(b.String()))
}

// Save writes list to path in the format its extension selects.
func Save(path string, list []solver.Word) error {
	switch FormatOf(path) {
	case FormatBinary:
		return WriteBinary(path, list)
	case FormatText:
		lines := make([]string, len(list))
		for i, w := range list {
			lines[i] = string(w)
		}
		return WriteText(path, lines)
	}
	return fmt.Errorf("word list %s: %w", path, ErrUnknownFormat)
}

// writeFile replaces path atomically via a temp file in the same directory.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".words-*")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
