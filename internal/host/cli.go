package host

import (
	"bufio"
	"fmt"
	"io"
)

// CLIHost wires the interpreter to process stdio, the host the `brewin`
// binary runs programs against.
type CLIHost struct {
	out      io.Writer
	in       *bufio.Scanner
	lastKind ErrorKind
	lastMsg  string
	errored  bool
}

// NewCLIHost builds a host that writes to out and reads lines from in.
func NewCLIHost(out io.Writer, in io.Reader) *CLIHost {
	return &CLIHost{out: out, in: bufio.NewScanner(in)}
}

func (h *CLIHost) Output(s string) {
	fmt.Fprintln(h.out, s)
}

func (h *CLIHost) GetInput() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return h.in.Text(), nil
}

func (h *CLIHost) Error(kind ErrorKind, message string) {
	h.errored = true
	h.lastKind = kind
	h.lastMsg = message
}

// Errored reports whether Error was ever called, and with what.
func (h *CLIHost) Errored() (ErrorKind, string, bool) {
	return h.lastKind, h.lastMsg, h.errored
}
