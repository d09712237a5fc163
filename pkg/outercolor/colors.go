package outercolor

import "fmt"

// OSC color codes understood by the engine.
const (
	CodeForeground = 10
	CodeBackground = 11
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Fallbacks used when the outer terminal never reported a color.
var (
	DefaultForeground = RGB{R: 255, G: 255, B: 255} // white
	DefaultBackground = RGB{R: 53, G: 55, B: 49}    // dark gray
)

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb or rrggbb.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 digits", s)
	}
	var c RGB
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v, ok := parseHexComponent(s[i*2 : i*2+2])
		if !ok {
			return RGB{}, fmt.Errorf("invalid hex color %q", s)
		}
		*dst = v
	}
	return c, nil
}

// TerminalColors holds the outer terminal's colors. A color whose Has flag is
// false is unknown, which is distinct from any particular color.
type TerminalColors struct {
	Foreground    RGB
	Background    RGB
	HasForeground bool
	HasBackground bool
}

// ForegroundOr returns the foreground, or fallback when it is unknown.
func (c TerminalColors) ForegroundOr(fallback RGB) RGB {
	if c.HasForeground {
		return c.Foreground
	}
	return fallback
}

// BackgroundOr returns the background, or fallback when it is unknown.
func (c TerminalColors) BackgroundOr(fallback RGB) RGB {
	if c.HasBackground {
		return c.Background
	}
	return fallback
}

// Empty reports whether neither color is known.
func (c TerminalColors) Empty() bool {
	return !c.HasForeground && !c.HasBackground
}

// ThemeChangeEvent wakes the consumer after the OS signaled a theme change.
// Colors is the cache snapshot taken when the signal arrived, i.e. the values
// from before the refresh the consumer is expected to run.
type ThemeChangeEvent struct {
	Colors TerminalColors
}
