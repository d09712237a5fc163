package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// Text renders a report as aligned lines with color swatches.
type Text struct {
	profile termenv.Profile
	icons   ThemeIcons
	title   cases.Caser
}

// NewText creates a text renderer. Swatches are drawn with profile;
// termenv.Ascii disables them along with the unicode glyphs.
func NewText(profile termenv.Profile) *Text {
	icons := unicodeIcons
	if profile == termenv.Ascii {
		icons = asciiIcons
	}
	return &Text{profile: profile, icons: icons, title: cases.Title(language.English)}
}

type textRow struct {
	label string
	rgb   outercolor.RGB
	ok    bool
	note  string
}

// Render formats r for terminal display.
func (t *Text) Render(r Report) string {
	rows := []textRow{
		{label: "foreground", rgb: r.Colors.Foreground, ok: r.Colors.HasForeground},
		{label: "background", rgb: r.Colors.Background, ok: r.Colors.HasBackground},
	}
	if !rows[0].ok {
		rows[0].rgb, rows[0].note = r.FallbackFG, "fallback"
	}
	if !rows[1].ok {
		rows[1].rgb, rows[1].note = r.FallbackBG, "fallback"
	}

	width := 0
	for i := range rows {
		rows[i].label = t.title.String(rows[i].label)
		width = max(width, runewidth.StringWidth(rows[i].label))
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(runewidth.FillRight(row.label, width))
		sb.WriteString("  ")
		sb.WriteString(t.swatch(row))
		fmt.Fprintf(&sb, " %s  %s", row.rgb.Hex(), row.rgb)
		if row.note != "" {
			fmt.Fprintf(&sb, "  (%s)", row.note)
		}
		sb.WriteString("\n")
	}

	tone, icon := "light", t.icons.Light
	if r.Dark() {
		tone, icon = "dark", t.icons.Dark
	}
	if icon != "" {
		tone = icon + " " + tone
	}
	sb.WriteString(runewidth.FillRight(t.title.String("theme"), width))
	sb.WriteString("  ")
	sb.WriteString(tone)
	if !r.Initialized {
		sb.WriteString("  (not queried)")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *Text) swatch(row textRow) string {
	if !row.ok {
		return t.icons.Missing
	}
	return t.profile.String(t.icons.Swatch).
		Foreground(t.profile.Color(row.rgb.Hex())).
		String()
}
