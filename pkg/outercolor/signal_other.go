//go:build !unix

package outercolor

// NewSignalNotifier returns a notifier that never fires: this platform has no
// SIGUSR1. Use NewFileNotifier for theme-change detection here.
func NewSignalNotifier() (Notifier, error) {
	return NopNotifier(), nil
}
