// Package cli holds the interactive, line-oriented front end of the solver.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when input ends before the session does.
var ErrAborted = errors.New("input closed")

// Prompter asks questions on out and reads answers from in, one per line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps in and out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer line.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Printf writes a formatted line to the output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
