package outercolor

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	esc = 0x1b
	bel = 0x07
)

var rgbMarker = []byte("rgb:")

// ParseResponse extracts the color from an OSC 10/11 reply such as
//
//	ESC ] 11 ; rgb:3535/3737/3131 ESC \
//
// Components may carry 1 to 4 hex digits. The result is all-or-nothing: a
// reply with any undecodable component reports false.
func ParseResponse(response []byte) (RGB, bool) {
	if !utf8.Valid(response) {
		return RGB{}, false
	}
	start := bytes.Index(response, rgbMarker)
	if start < 0 {
		return RGB{}, false
	}
	payload := response[start+len(rgbMarker):]
	if end := bytes.IndexAny(payload, "\x1b\x07"); end >= 0 {
		payload = payload[:end]
	}

	parts := strings.Split(string(payload), "/")
	if len(parts) != 3 {
		return RGB{}, false
	}
	var c RGB
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v, ok := parseHexComponent(parts[i])
		if !ok {
			return RGB{}, false
		}
		*dst = v
	}
	return c, true
}

// parseHexComponent decodes one channel. Up to two digits are an 8-bit value;
// three or four digits are a 16-bit value scaled down by keeping the high byte.
func parseHexComponent(s string) (uint8, bool) {
	if s == "" || len(s) > 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	if len(s) <= 2 {
		return uint8(v), true
	}
	return uint8(v >> 8), true
}
