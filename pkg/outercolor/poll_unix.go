//go:build unix

package outercolor

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// readTimeout waits for the fd to become readable with poll(2) and then
// performs a single read, so it never blocks past wait.
func readTimeout(f *os.File, p []byte, wait time.Duration) (int, error) {
	fd := int(f.Fd())
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	ms := int(wait / time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, ErrWouldBlock
		}
		return 0, err
	}
	if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) == 0 {
		return 0, ErrWouldBlock
	}

	n, err = unix.Read(fd, p)
	switch {
	case err != nil:
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, ErrWouldBlock
		}
		return 0, err
	case n == 0:
		return 0, io.EOF
	}
	return n, nil
}
