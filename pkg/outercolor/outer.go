package outercolor

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Options configures an Outer. Zero fields take defaults: stdio, a fresh
// cache and SIGUSR1 notifications.
type Options struct {
	Terminal    Terminal
	Cache       *Cache
	Engine      EngineConfig
	NewNotifier NotifierFactory
	Logger      *slog.Logger
}

// Outer bundles the cache, the query engine and theme-change listening for
// one terminal. Applications typically hold one Outer in their context.
type Outer struct {
	cache       *Cache
	engine      *Engine
	newNotifier NotifierFactory
	log         *slog.Logger
}

// New builds an Outer from opts.
func New(opts Options) *Outer {
	if opts.Terminal == nil {
		opts.Terminal = Stdio()
	}
	if opts.Cache == nil {
		opts.Cache = NewCache()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Engine.Logger == nil {
		opts.Engine.Logger = opts.Logger
	}
	return &Outer{
		cache:       opts.Cache,
		engine:      NewEngine(opts.Terminal, opts.Cache, opts.Engine),
		newNotifier: opts.NewNotifier,
		log:         opts.Logger,
	}
}

// Cache returns the shared color cache.
func (o *Outer) Cache() *Cache { return o.cache }

// Colors returns the cached colors.
func (o *Outer) Colors() TerminalColors { return o.cache.Get() }

// Foreground returns the cached foreground or white.
func (o *Outer) Foreground() RGB { return o.cache.Foreground() }

// Background returns the cached background or dark gray.
func (o *Outer) Background() RGB { return o.cache.Background() }

// SetColors overwrites the cache.
func (o *Outer) SetColors(colors TerminalColors) { o.cache.Set(colors) }

// Initialized reports whether colors were ever stored.
func (o *Outer) Initialized() bool { return o.cache.Initialized() }

// Query runs the OSC query engine. See Engine.Query.
func (o *Outer) Query() TerminalColors { return o.engine.Query() }

// Refresh re-queries after a ThemeChangeEvent. See Engine.Refresh.
func (o *Outer) Refresh() TerminalColors { return o.engine.Refresh() }

// Listen starts a bridge delivering ThemeChangeEvents to sink.
func (o *Outer) Listen(sink Sender) *Bridge {
	b := NewBridge(o.cache, o.newNotifier, sink, o.log)
	b.Spawn()
	return b
}

// ListenContext is Listen with a bridge that also stops when ctx is done.
func (o *Outer) ListenContext(ctx context.Context, sink Sender) *Bridge {
	b := NewBridge(o.cache, o.newNotifier, sink, o.log)
	go b.Run(ctx)
	return b
}

var defaultOuter atomic.Pointer[Outer]

// Default returns the process-wide Outer used by the package-level functions.
// It is created on first use over stdio.
func Default() *Outer {
	if o := defaultOuter.Load(); o != nil {
		return o
	}
	defaultOuter.CompareAndSwap(nil, New(Options{}))
	return defaultOuter.Load()
}

// SetDefault replaces the process-wide Outer.
func SetDefault(o *Outer) {
	defaultOuter.Store(o)
}

// GetOuterColors returns the cached outer terminal colors.
func GetOuterColors() TerminalColors { return Default().Colors() }

// GetOuterFG returns the outer foreground, or white if unknown.
func GetOuterFG() RGB { return Default().Foreground() }

// GetOuterBG returns the outer background, or 53/55/49 if unknown.
func GetOuterBG() RGB { return Default().Background() }

// SetOuterColors overwrites the cached colors.
func SetOuterColors(colors TerminalColors) { Default().SetColors(colors) }

// ColorsInitialized reports whether colors were ever stored.
func ColorsInitialized() bool { return Default().Initialized() }

// QueryOuterTerminalColors queries the terminal on stdio. Call it before
// entering the alternate screen; it blocks for up to ~200ms.
func QueryOuterTerminalColors() TerminalColors { return Default().Query() }

// RefreshOuterColors re-queries in response to a ThemeChangeEvent, after the
// application has left the alternate screen.
func RefreshOuterColors() TerminalColors { return Default().Refresh() }

// SpawnThemeChangeListener forwards SIGUSR1 as ThemeChangeEvents to sink
// until sink reports its receiver closed. It is a no-op where SIGUSR1 does
// not exist.
func SpawnThemeChangeListener(sink Sender) { Default().Listen(sink) }
