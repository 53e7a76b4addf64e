// Package daily derives a deterministic secret for a calendar day, so the
// simulator can replay "today's" puzzle from any candidate list.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns HMAC(salt, YYYY-MM-DD) mod n, or 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes spread well enough for a modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Secret picks the day's word from list. It returns false for an empty list.
func Secret(date time.Time, salt string, list []solver.Word) (solver.Word, bool) {
	if len(list) == 0 {
		return "", false
	}
	return list[WordIndex(date, salt, len(list))], true
}
