package host

import (
	"bufio"
	"io"
	"strings"
)

// BufferHost is an in-memory Host for tests: output accumulates in a
// buffer, input is drained from a preset queue of lines.
type BufferHost struct {
	lines    []string
	output   []string
	scanner  *bufio.Scanner
	lastKind ErrorKind
	lastMsg  string
	errored  bool
}

// NewBufferHost builds a BufferHost whose GetInput() replies, in order,
// with the given input lines.
func NewBufferHost(input ...string) *BufferHost {
	h := &BufferHost{}
	h.scanner = bufio.NewScanner(strings.NewReader(strings.Join(input, "\n")))
	return h
}

func (h *BufferHost) Output(s string) {
	h.output = append(h.output, s)
}

func (h *BufferHost) GetInput() (string, error) {
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return h.scanner.Text(), nil
}

func (h *BufferHost) Error(kind ErrorKind, message string) {
	h.errored = true
	h.lastKind = kind
	h.lastMsg = message
}

// Errored reports whether Error was ever called, and with what.
func (h *BufferHost) Errored() (ErrorKind, string, bool) {
	return h.lastKind, h.lastMsg, h.errored
}

// Lines returns every line Output was called with, in order.
func (h *BufferHost) Lines() []string {
	return h.output
}

// String joins all output lines with newlines, trailing newline included.
func (h *BufferHost) String() string {
	if len(h.output) == 0 {
		return ""
	}
	return strings.Join(h.output, "\n") + "\n"
}
