package outercolor

import (
	"sync"
	"sync/atomic"
)

// channel is one independently locked color slot.
type channel struct {
	mu  sync.RWMutex
	rgb RGB
	ok  bool
}

func (ch *channel) load() (RGB, bool) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.rgb, ch.ok
}

func (ch *channel) store(rgb RGB, ok bool) {
	ch.mu.Lock()
	ch.rgb, ch.ok = rgb, ok
	ch.mu.Unlock()
}

// Cache holds the last known outer terminal colors. It is safe for
// concurrent use; the zero value is an empty, uninitialized cache.
//
// Foreground and background are guarded separately, so a reader racing a Set
// may see the new foreground with the old background, but never a partially
// written triple.
type Cache struct {
	fg          channel
	bg          channel
	initialized atomic.Bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the most recently stored colors.
func (c *Cache) Get() TerminalColors {
	var out TerminalColors
	out.Foreground, out.HasForeground = c.fg.load()
	out.Background, out.HasBackground = c.bg.load()
	return out
}

// Foreground returns the stored foreground or DefaultForeground.
func (c *Cache) Foreground() RGB {
	return c.ForegroundOr(DefaultForeground)
}

// Background returns the stored background or DefaultBackground.
func (c *Cache) Background() RGB {
	return c.BackgroundOr(DefaultBackground)
}

// ForegroundOr returns the stored foreground or fallback.
func (c *Cache) ForegroundOr(fallback RGB) RGB {
	if rgb, ok := c.fg.load(); ok {
		return rgb
	}
	return fallback
}

// BackgroundOr returns the stored background or fallback.
func (c *Cache) BackgroundOr(fallback RGB) RGB {
	if rgb, ok := c.bg.load(); ok {
		return rgb
	}
	return fallback
}

// Set overwrites both channels and marks the cache initialized. Absent
// colors in colors clear the corresponding channel.
func (c *Cache) Set(colors TerminalColors) {
	c.fg.store(colors.Foreground, colors.HasForeground)
	c.bg.store(colors.Background, colors.HasBackground)
	c.initialized.Store(true)
}

// Initialized reports whether Set has been called at least once.
func (c *Cache) Initialized() bool {
	return c.initialized.Load()
}
