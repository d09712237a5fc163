package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// Theme holds the styles a hostcolor view draws with.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Panel   lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the glyphs for a theme.
type ThemeIcons struct {
	Swatch  string
	Missing string
	Dark    string
	Light   string
}

var (
	unicodeIcons = ThemeIcons{Swatch: "██", Missing: "░░", Dark: "☾", Light: "☀"}
	asciiIcons   = ThemeIcons{Swatch: "##", Missing: "--"}
)

// accents pairs a readable accent for dark and light backgrounds.
var accents = struct{ dark, light outercolor.RGB }{
	dark:  outercolor.RGB{R: 0x5f, G: 0xaf, B: 0xff},
	light: outercolor.RGB{R: 0x00, G: 0x5f, B: 0xaf},
}

func color(c outercolor.RGB) lipgloss.Color { return lipgloss.Color(c.Hex()) }

// HostTheme derives a theme that sits inside the host terminal's palette.
// Muted text is the foreground pulled halfway to the background and the panel
// is the background nudged toward the foreground, so both stay legible on
// light and dark themes.
func HostTheme(r Report) Theme {
	fg, bg := r.Foreground(), r.Background()
	accent := accents.light
	if bg.IsDark() {
		accent = accents.dark
	}
	return Theme{
		Name:    "host",
		Primary: lipgloss.NewStyle().Foreground(color(fg)),
		Accent:  lipgloss.NewStyle().Foreground(color(accent.Blend(fg, 0.15))),
		Muted:   lipgloss.NewStyle().Foreground(color(fg.Blend(bg, 0.5))),
		Bold:    lipgloss.NewStyle().Bold(true).Foreground(color(fg)),
		Panel: lipgloss.NewStyle().
			Foreground(color(fg)).
			Background(color(bg.Blend(fg, 0.08))).
			Padding(0, 1),
		Icons: unicodeIcons,
	}
}

// MonoTheme returns a theme with no colors.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Primary: lipgloss.NewStyle(),
		Accent:  lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Panel:   lipgloss.NewStyle().Padding(0, 1),
		Icons:   asciiIcons,
	}
}

// ThemeFor picks HostTheme unless color is disabled.
func ThemeFor(r Report, noColor bool) Theme {
	if noColor {
		return MonoTheme()
	}
	return HostTheme(r)
}
