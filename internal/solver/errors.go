package solver

import "errors"

var (
	// ErrMalformedFeedback is returned when a pattern has the wrong length or
	// holds a symbol other than Correct, Present or Absent.
	ErrMalformedFeedback = errors.New("malformed feedback")

	// ErrMalformedWord is returned for words that are not exactly WordLen
	// lowercase letters a–z.
	ErrMalformedWord = errors.New("malformed word")

	// ErrEmptyCandidateSet is returned by Best when no candidates remain.
	// It is a terminal outcome for a session, not a failure of the engine.
	ErrEmptyCandidateSet = errors.New("no candidates left")

	// ErrUnsupportedDuplicatePattern is returned by the pairwise rules when a
	// guess repeats a letter three or more times, or repeats more than one letter.
	ErrUnsupportedDuplicatePattern = errors.New("unsupported duplicate letter pattern")
)
