package outercolor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResponse_16BitReply(t *testing.T) {
	got, ok := ParseResponse([]byte("\x1b]11;rgb:3535/3737/3131\x1b\\"))
	assert.True(t, ok)
	assert.Equal(t, RGB{R: 0x35, G: 0x37, B: 0x31}, got)
}

func TestParseResponse_8BitReply(t *testing.T) {
	got, ok := ParseResponse([]byte("\x1b]11;rgb:35/37/31\x1b\\"))
	assert.True(t, ok)
	assert.Equal(t, RGB{R: 0x35, G: 0x37, B: 0x31}, got)
}

func TestParseResponse_BlackAndWhite(t *testing.T) {
	black, ok := ParseResponse([]byte("\x1b]11;rgb:0000/0000/0000\x1b\\"))
	assert.True(t, ok)
	assert.Equal(t, RGB{}, black)

	white, ok := ParseResponse([]byte("\x1b]10;rgb:ffff/ffff/ffff\x1b\\"))
	assert.True(t, ok)
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, white)
}

func TestParseResponse_BELTerminated(t *testing.T) {
	got, ok := ParseResponse([]byte("\x1b]10;rgb:c0c0/8080/4040\x07"))
	assert.True(t, ok)
	assert.Equal(t, RGB{R: 0xc0, G: 0x80, B: 0x40}, got)
}

func TestParseResponse_UnterminatedPayloadRunsToEnd(t *testing.T) {
	got, ok := ParseResponse([]byte("\x1b]11;rgb:10/20/30"))
	assert.True(t, ok)
	assert.Equal(t, RGB{R: 0x10, G: 0x20, B: 0x30}, got)
}

func TestParseResponse_HighByteOfEvery16BitChannel(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x00ff, 0x0100, 0x7f80, 0x8000, 0xabcd, 0xff00, 0xffff} {
		reply := fmt.Sprintf("\x1b]11;rgb:%04x/%04x/%04x\x1b\\", v, v, v)
		got, ok := ParseResponse([]byte(reply))
		want := uint8(v >> 8)
		assert.True(t, ok, reply)
		assert.Equal(t, RGB{R: want, G: want, B: want}, got, reply)
	}
}

func TestParseResponse_8BitValuesUsedVerbatim(t *testing.T) {
	for v := 0; v < 256; v += 17 {
		reply := fmt.Sprintf("\x1b]10;rgb:%02x/%02x/%02x\x1b\\", v, 255-v, v/2)
		got, ok := ParseResponse([]byte(reply))
		assert.True(t, ok, reply)
		assert.Equal(t, RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}, got, reply)
	}
}

func TestParseResponse_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no rgb marker", "\x1b]11;#353731\x1b\\"},
		{"two parts", "\x1b]11;rgb:3535/3737\x1b\\"},
		{"four parts", "\x1b]11;rgb:35/37/31/00\x1b\\"},
		{"non hex", "\x1b]11;rgb:zz/37/31\x1b\\"},
		{"empty component", "\x1b]11;rgb:35//31\x1b\\"},
		{"too long component", "\x1b]11;rgb:353535/37/31\x1b\\"},
		{"signed component", "\x1b]11;rgb:-1/37/31\x1b\\"},
		{"invalid utf8", "\x1b]11;rgb:35/37/31\xff\xfe\x1b\\"},
		{"marker only", "rgb:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, ok := ParseResponse([]byte(tt.input))
				assert.False(t, ok)
			})
		})
	}
}

func TestParseHexComponent(t *testing.T) {
	tests := []struct {
		in   string
		want uint8
	}{
		{"ff", 255},
		{"00", 0},
		{"f", 15},
		{"ffff", 255},
		{"0000", 0},
		{"3535", 0x35},
		{"8080", 0x80},
		{"fff", 0x0f},
	}
	for _, tt := range tests {
		got, ok := parseHexComponent(tt.in)
		assert.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "g0", "12345", "0x1"} {
		_, ok := parseHexComponent(bad)
		assert.False(t, ok, bad)
	}
}
