//go:build !unix

package outercolor

import (
	"errors"
	"os"
	"time"
)

// readTimeout relies on read deadlines where the platform supports them.
// Console handles without deadline support report ErrWouldBlock without
// reading, so the query runs out its deadline and yields absent colors.
func readTimeout(f *os.File, p []byte, wait time.Duration) (int, error) {
	if err := f.SetReadDeadline(time.Now().Add(wait)); err != nil {
		time.Sleep(wait)
		return 0, ErrWouldBlock
	}
	defer f.SetReadDeadline(time.Time{}) //nolint:errcheck // best effort reset

	n, err := f.Read(p)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return n, ErrWouldBlock
	}
	return n, err
}
