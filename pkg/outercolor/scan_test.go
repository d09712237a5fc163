package outercolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseScanner_STTerminated(t *testing.T) {
	sc := newResponseScanner(11)
	done := sc.Feed([]byte("\x1b]11;rgb:3535/3737/3131\x1b\\"))
	assert.True(t, done)
	assert.Equal(t, "\x1b]11;rgb:3535/3737/3131\x1b\\", string(sc.Bytes()))
}

func TestResponseScanner_BELTerminated(t *testing.T) {
	sc := newResponseScanner(10)
	assert.True(t, sc.Feed([]byte("\x1b]10;rgb:ff/ff/ff\x07")))
}

func TestResponseScanner_ByteAtATime(t *testing.T) {
	sc := newResponseScanner(11)
	reply := []byte("\x1b]11;rgb:12/34/56\x1b\\")
	for i, b := range reply {
		done := sc.Feed([]byte{b})
		assert.Equal(t, i == len(reply)-1, done, "byte %d", i)
	}
}

func TestResponseScanner_DiscardsKeystrokesAndCSI(t *testing.T) {
	sc := newResponseScanner(11)
	assert.False(t, sc.Feed([]byte("jk\x1b[A\x1b[1;5C q")))
	assert.Empty(t, sc.Bytes())

	assert.True(t, sc.Feed([]byte("\x1b]11;rgb:01/02/03\x1b\\trailing")))
	got, ok := ParseResponse(sc.Bytes())
	assert.True(t, ok)
	assert.Equal(t, RGB{R: 1, G: 2, B: 3}, got)
}

func TestResponseScanner_DropsReplyForOtherCode(t *testing.T) {
	sc := newResponseScanner(11)
	assert.False(t, sc.Feed([]byte("\x1b]10;rgb:ffff/ffff/ffff\x1b\\")))
	assert.Empty(t, sc.Bytes())

	assert.True(t, sc.Feed([]byte("\x1b]11;rgb:0000/0000/0000\x1b\\")))
	got, ok := ParseResponse(sc.Bytes())
	assert.True(t, ok)
	assert.Equal(t, RGB{}, got)
}

func TestResponseScanner_PartialReplyKept(t *testing.T) {
	sc := newResponseScanner(11)
	assert.False(t, sc.Feed([]byte("\x1b]11;rgb:3535/37")))
	assert.Equal(t, "\x1b]11;rgb:3535/37", string(sc.Bytes()))
	_, ok := ParseResponse(sc.Bytes())
	assert.False(t, ok)
}

func TestResponseScanner_CapsLength(t *testing.T) {
	sc := newResponseScanner(11)
	long := make([]byte, 0, 1024)
	long = append(long, "\x1b]11;"...)
	for len(long) < 1000 {
		long = append(long, 'a')
	}
	sc.Feed(long)
	assert.LessOrEqual(t, len(sc.Bytes()), maxResponseLen)
}

func TestResponseScanner_IgnoresInputAfterCompletion(t *testing.T) {
	sc := newResponseScanner(10)
	sc.Feed([]byte("\x1b]10;rgb:1/2/3\x07"))
	before := string(sc.Bytes())
	assert.True(t, sc.Feed([]byte("\x1b]10;rgb:4/5/6\x07")))
	assert.Equal(t, before, string(sc.Bytes()))
}
