// Package render formats host terminal colors for the hostcolor CLI.
package render

import "github.com/dkoosis/hostcolor/pkg/outercolor"

// Report is what a renderer prints: the cache snapshot plus the fallbacks
// the caller would use for absent channels.
type Report struct {
	Colors      outercolor.TerminalColors
	FallbackFG  outercolor.RGB
	FallbackBG  outercolor.RGB
	Initialized bool
}

// NewReport snapshots cache with the given fallbacks.
func NewReport(cache *outercolor.Cache, fallbackFG, fallbackBG outercolor.RGB) Report {
	return Report{
		Colors:      cache.Get(),
		FallbackFG:  fallbackFG,
		FallbackBG:  fallbackBG,
		Initialized: cache.Initialized(),
	}
}

// Foreground is the color to draw with: the reported one or the fallback.
func (r Report) Foreground() outercolor.RGB { return r.Colors.ForegroundOr(r.FallbackFG) }

// Background is the color to draw on: the reported one or the fallback.
func (r Report) Background() outercolor.RGB { return r.Colors.BackgroundOr(r.FallbackBG) }

// Dark reports whether the effective background is dark.
func (r Report) Dark() bool { return r.Background().IsDark() }

// Renderer converts a report to formatted output.
type Renderer interface {
	Render(r Report) string
}

// ByFormat returns the renderer for format ("text" or "json").
func ByFormat(format string, text *Text) (Renderer, bool) {
	switch format {
	case "", "text":
		return text, true
	case "json":
		return NewJSON(), true
	default:
		return nil, false
	}
}
