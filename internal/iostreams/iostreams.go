// Package iostreams abstracts standard I/O for testability and dependency
// injection. Inspired by cli/cli's iostreams package.
package iostreams

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams carries the reader and writers a command should talk to
// instead of touching os.Stdin/Stdout/Stderr directly. Unit tests inject
// in-memory buffers; TTY detection is mockable for piped-output scenarios.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// isTerminalFunc allows lazy evaluation and mocking of TTY detection
	isTerminalFunc func(fd int) bool
	stdoutFd       int
}

// System creates IOStreams connected to os.Stdin/Stdout/Stderr. Use this
// in production code for real terminal I/O.
func System() *IOStreams {
	return &IOStreams{
		In:             os.Stdin,
		Out:            os.Stdout,
		ErrOut:         os.Stderr,
		isTerminalFunc: term.IsTerminal,
		stdoutFd:       int(os.Stdout.Fd()),
	}
}

// IsOutputTTY reports whether stdout is a terminal. Commands use this to
// decide between human-friendly output (trailing newline) and raw output
// suitable for shell substitution.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isTerminalFunc == nil {
		return false
	}
	return s.isTerminalFunc(s.stdoutFd)
}

// Test creates IOStreams backed by in-memory buffers, simulating a TTY.
// Returns the streams and the output and error buffers for assertions.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{
		In:             &bytes.Buffer{},
		Out:            out,
		ErrOut:         errOut,
		isTerminalFunc: func(int) bool { return true },
	}, out, errOut
}

// TestNonTTY is Test for piped-output scenarios (shell substitution,
// CI/CD): IsOutputTTY reports false.
func TestNonTTY() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{
		In:             &bytes.Buffer{},
		Out:            out,
		ErrOut:         errOut,
		isTerminalFunc: func(int) bool { return false },
	}, out, errOut
}
