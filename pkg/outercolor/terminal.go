package outercolor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrWouldBlock is returned by Terminal.ReadTimeout when no input arrived
// within the wait.
var ErrWouldBlock = errors.New("read would block")

// ErrNotTerminal is returned by StdTerminal.MakeRaw when stdin is not a tty.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal is the byte stream the engine talks to.
type Terminal interface {
	// MakeRaw switches input to raw mode and returns a func restoring the
	// previous mode.
	MakeRaw() (restore func() error, err error)

	// ReadTimeout reads whatever input is available, waiting at most wait.
	// It returns ErrWouldBlock when nothing arrived and io.EOF at end of input.
	ReadTimeout(p []byte, wait time.Duration) (int, error)

	Write(p []byte) (int, error)
	Flush() error
}

// StdTerminal is a Terminal over a tty input file and a buffered output.
// A failed write or flush discards the buffered query so the next one starts
// clean.
type StdTerminal struct {
	in  *os.File
	w   io.Writer
	out *bufio.Writer
}

var _ Terminal = (*StdTerminal)(nil)

// NewStdTerminal returns a Terminal reading in and writing out.
func NewStdTerminal(in *os.File, out io.Writer) *StdTerminal {
	return &StdTerminal{in: in, w: out, out: bufio.NewWriterSize(out, 64)}
}

// Stdio returns a Terminal over os.Stdin and os.Stdout.
func Stdio() *StdTerminal {
	return NewStdTerminal(os.Stdin, os.Stdout)
}

// MakeRaw puts the input file into raw mode.
func (t *StdTerminal) MakeRaw() (func() error, error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin: %w", ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}

// ReadTimeout reads from the input file without blocking past wait.
func (t *StdTerminal) ReadTimeout(p []byte, wait time.Duration) (int, error) {
	return readTimeout(t.in, p, wait)
}

func (t *StdTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		t.out.Reset(t.w)
	}
	return n, err
}

// Flush pushes buffered output to the terminal.
func (t *StdTerminal) Flush() error {
	if err := t.out.Flush(); err != nil {
		t.out.Reset(t.w)
		return err
	}
	return nil
}
