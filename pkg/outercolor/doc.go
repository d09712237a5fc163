// Package outercolor discovers the foreground and background colors of the
// host terminal so a TUI can blend into the surrounding theme.
//
// Colors are obtained with the OSC 10/11 query convention: the engine puts the
// terminal into raw mode, writes
//
//	ESC ] 10 ; ? ESC \
//	ESC ] 11 ; ? ESC \
//
// and reads replies of the form
//
//	ESC ] 11 ; rgb:RRRR/GGGG/BBBB ESC \
//
// Every read is bounded by a deadline (100ms per color by default), so a
// terminal that never answers costs at most ~200ms and yields absent colors.
//
// # Usage
//
// Query once before entering the alternate screen:
//
//	colors := outercolor.QueryOuterTerminalColors()
//	bg := outercolor.GetOuterBG() // falls back to 53/55/49
//
// Theme changes arrive as SIGUSR1 on unix. Forward them into the event loop
// and re-query after leaving the alternate screen:
//
//	q := outercolor.NewEventQueue()
//	outercolor.SpawnThemeChangeListener(q)
//	for ev := range q.Events() {
//		_ = ev // pre-refresh snapshot
//		outercolor.RefreshOuterColors()
//	}
//
// Callers that prefer explicit wiring construct a Cache, an Engine and a
// Bridge directly instead of using the package-level functions.
package outercolor
