package outercolor

import (
	"bytes"
	"strconv"
)

// maxResponseLen caps the accumulated reply. Real replies are ~25 bytes.
const maxResponseLen = 256

type scanState int

const (
	scanIdle   scanState = iota // discarding input, waiting for ESC
	scanEsc                     // saw ESC outside a reply
	scanOSC                     // inside ESC ] ...
	scanOSCEsc                  // saw ESC inside a reply
)

// responseScanner picks an OSC reply out of raw terminal input.
//
// Raw mode delivers everything the user types, so bytes that are not part of
// an OSC sequence (keystrokes, CSI sequences such as arrow keys) are dropped.
// A completed OSC sequence for a different code is dropped as well, which
// keeps a late foreground reply from being read as the background.
type responseScanner struct {
	prefix []byte
	buf    []byte
	state  scanState
	done   bool
}

func newResponseScanner(code int) *responseScanner {
	return &responseScanner{
		prefix: []byte("\x1b]" + strconv.Itoa(code) + ";"),
		buf:    make([]byte, 0, 64),
	}
}

// Feed consumes input and reports whether a terminated reply is complete.
// Input after completion is ignored.
func (s *responseScanner) Feed(p []byte) bool {
	for _, b := range p {
		if s.done {
			return true
		}
		s.step(b)
	}
	return s.done
}

// Bytes returns the reply accumulated so far, terminated or not.
func (s *responseScanner) Bytes() []byte {
	return s.buf
}

func (s *responseScanner) step(b byte) {
	switch s.state {
	case scanIdle:
		if b == esc {
			s.state = scanEsc
		}
	case scanEsc:
		switch b {
		case ']':
			s.begin()
		case esc:
			// ESC ESC: stay armed
		default:
			s.state = scanIdle
		}
	case scanOSC:
		s.push(b)
		switch b {
		case bel:
			s.finish()
		case esc:
			s.state = scanOSCEsc
		}
	case scanOSCEsc:
		switch b {
		case '\\':
			s.push(b)
			s.finish()
		case ']':
			s.begin()
		case esc:
			s.push(b)
		default:
			s.push(b)
			s.state = scanOSC
		}
	}
}

func (s *responseScanner) begin() {
	s.buf = append(s.buf[:0], esc, ']')
	s.state = scanOSC
}

func (s *responseScanner) push(b byte) {
	if len(s.buf) < maxResponseLen {
		s.buf = append(s.buf, b)
	}
}

func (s *responseScanner) finish() {
	if len(s.prefix) > 0 && !bytes.HasPrefix(s.buf, s.prefix) {
		s.buf = s.buf[:0]
		s.state = scanIdle
		return
	}
	s.done = true
}
