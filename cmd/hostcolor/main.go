// hostcolor asks the host terminal for its foreground and background colors.
//
// Usage:
//
//	hostcolor query               # print both colors
//	hostcolor query --format json # machine-readable
//	hostcolor watch               # re-query on SIGUSR1 or --watch-file changes
//	hostcolor preview             # interactive view in the host palette
//
// The query uses OSC 10/11 and needs stdin to be the terminal. When the
// terminal stays silent the configured fallbacks are reported.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// openTerminal picks the terminal the query talks to. Tests replace it.
var openTerminal = defaultTerminal

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "hostcolor: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

// usageError marks errors caused by bad arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// defaultTerminal returns the stdio terminal when stdin is a tty. Replies
// are requested on stdout when it is a tty too, otherwise on stderr, so
// piped output stays free of escape sequences.
func defaultTerminal(stdin io.Reader, stdout, stderr io.Writer) outercolor.Terminal {
	in, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return noTerminal{}
	}
	if isTTYWriter(stdout) {
		return outercolor.NewStdTerminal(in, stdout)
	}
	if isTTYWriter(stderr) {
		return outercolor.NewStdTerminal(in, stderr)
	}
	return noTerminal{}
}

func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// noTerminal refuses raw mode so queries report absent colors at once.
type noTerminal struct{}

func (noTerminal) MakeRaw() (func() error, error) { return nil, outercolor.ErrNotTerminal }
func (noTerminal) ReadTimeout([]byte, time.Duration) (int, error) {
	return 0, outercolor.ErrNotTerminal
}
func (noTerminal) Write(p []byte) (int, error) { return len(p), nil }
func (noTerminal) Flush() error                { return nil }
