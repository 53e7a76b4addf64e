// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Load a candidate list from a file (plain text or compiled binary).
//   - Fall back to the embedded default list when no file is configured.
//   - Normalize entries: trim, lowercase, keep only valid five-letter words,
//     drop duplicates (first occurrence wins).
//
// Text lists:
//   One word per line. Blank lines and lines starting with '#' are ignored.
//
// There is no package-level state: every loader returns a fresh slice the
// caller owns.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/assets"
	"github.com/robalobadob/wordle-helper/internal/solver"
)

// Stats describes what a load kept and dropped.
type Stats struct {
	Kept       int
	Malformed  int
	Duplicates int
}

// Load reads the list at path, choosing the format from its extension.
// An empty path loads the embedded default list.
func Load(path string) ([]solver.Word, error) {
	if path == "" {
		return Default()
	}
	switch FormatOf(path) {
	case FormatBinary:
		return loadBinary(path)
	case FormatText:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open word list: %w", err)
		}
		defer f.Close()
		list, st, err := Parse(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		logStats(path, st)
		return list, nil
	}
	return nil, fmt.Errorf("word list %s: %w", path, ErrUnknownFormat)
}

// Default returns the embedded default list.
func Default() ([]solver.Word, error) {
	f, err := assets.OpenWordList()
	if err != nil {
		return nil, fmt.Errorf("embedded word list: %w", err)
	}
	defer f.Close()
	list, st, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("embedded word list: %w", err)
	}
	logStats(assets.WordListName, st)
	return list, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) ([]solver.Word, Stats, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, Stats{}, err
	}
	list, st := normalize(lines)
	return list, st, nil
}

// ReadLines returns every non-empty, non-comment line of the file at path,
// trimmed but otherwise unvalidated.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// ReadAllLines returns every line of the file at path as written, including
// blanks and comments, without line terminators.
func ReadAllLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), "\r"))
	}
	return out, sc.Err()
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalize keeps valid words in order, dropping malformed entries and
// repeats.
func normalize(lines []string) ([]solver.Word, Stats) {
	var st Stats
	seen := make(map[solver.Word]struct{}, len(lines))
	out := make([]solver.Word, 0, len(lines))
	for _, line := range lines {
		w, err := solver.ParseWord(line)
		if err != nil {
			st.Malformed++
			continue
		}
		if _, dup := seen[w]; dup {
			st.Duplicates++
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	st.Kept = len(out)
	return out, st
}

func logStats(source string, st Stats) {
	ev := log.Debug()
	if st.Malformed > 0 || st.Duplicates > 0 {
		ev = log.Warn()
	}
	ev.Str("source", source).
		Int("kept", st.Kept).
		Int("malformed", st.Malformed).
		Int("duplicates", st.Duplicates).
		Msg("loaded word list")
}
