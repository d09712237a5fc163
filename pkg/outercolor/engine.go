package outercolor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Default timings for a single color query.
const (
	DefaultTimeout      = 100 * time.Millisecond
	DefaultPollInterval = 10 * time.Millisecond
	DefaultRetryDelay   = 5 * time.Millisecond
)

// EngineConfig tunes the query engine. Zero fields take the defaults.
type EngineConfig struct {
	// Timeout bounds the wait for one color's reply.
	Timeout time.Duration
	// PollInterval is the longest single wait for input.
	PollInterval time.Duration
	// RetryDelay is the pause after a read that found nothing.
	RetryDelay time.Duration
	Logger     *slog.Logger
}

func normalizeEngineConfig(cfg EngineConfig) EngineConfig {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// Engine queries the outer terminal's colors over OSC 10/11 and records the
// result in a Cache.
//
// The engine toggles raw mode on the terminal, which is process-wide state:
// callers must not run other raw-mode users concurrently with Query, and must
// call it outside the alternate screen.
type Engine struct {
	term  Terminal
	cache *Cache
	cfg   EngineConfig
	log   *slog.Logger

	mu sync.Mutex // serializes queries
}

// NewEngine returns an engine querying t and storing into cache.
func NewEngine(t Terminal, cache *Cache, cfg EngineConfig) *Engine {
	cfg = normalizeEngineConfig(cfg)
	return &Engine{
		term:  t,
		cache: cache,
		cfg:   cfg,
		log:   cfg.Logger.With(slog.String("subsystem", "outercolor.engine")),
	}
}

// Cache returns the cache the engine writes to.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Query asks the terminal for its foreground and background colors, stores
// the result in the cache and returns it. It blocks for up to twice the
// configured timeout. Colors the terminal did not report are absent.
//
// When raw mode cannot be enabled no query is sent, the cache is left
// untouched and empty colors are returned.
func (e *Engine) Query() TerminalColors {
	e.mu.Lock()
	defer e.mu.Unlock()

	colors, err := e.queryRaw()
	if err != nil {
		e.log.Warn("terminal color query skipped", slog.String("error", err.Error()))
		return TerminalColors{}
	}
	e.cache.Set(colors)
	e.log.Debug("terminal colors queried",
		slog.Bool("has_fg", colors.HasForeground),
		slog.Bool("has_bg", colors.HasBackground))
	return colors
}

// Refresh re-runs Query. Call it after a ThemeChangeEvent, once the
// application has left the alternate screen.
func (e *Engine) Refresh() TerminalColors {
	return e.Query()
}

func (e *Engine) queryRaw() (colors TerminalColors, err error) {
	restore, err := e.term.MakeRaw()
	if err != nil {
		return colors, err
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			e.log.Warn("restoring terminal mode", slog.String("error", rerr.Error()))
		}
	}()

	colors.Foreground, colors.HasForeground = e.queryColor(CodeForeground)
	colors.Background, colors.HasBackground = e.queryColor(CodeBackground)
	return colors, nil
}

// queryColor runs one OSC query. Failures only affect this color.
func (e *Engine) queryColor(code int) (RGB, bool) {
	if err := e.send(code); err != nil {
		e.log.Debug("sending color query", slog.Int("code", code), slog.String("error", err.Error()))
		return RGB{}, false
	}
	resp := e.readResponse(code)
	rgb, ok := ParseResponse(resp)
	if !ok {
		e.log.Debug("no color reply", slog.Int("code", code), slog.Int("bytes", len(resp)))
	}
	return rgb, ok
}

func (e *Engine) send(code int) error {
	if _, err := fmt.Fprintf(e.term, "\x1b]%d;?\x1b\\", code); err != nil {
		return fmt.Errorf("writing query: %w", err)
	}
	if err := e.term.Flush(); err != nil {
		return fmt.Errorf("flushing query: %w", err)
	}
	return nil
}

// readResponse collects reply bytes until a terminator, EOF or the deadline.
// Whatever was gathered is returned; an unterminated reply is left for the
// parser to reject.
func (e *Engine) readResponse(code int) []byte {
	sc := newResponseScanner(code)
	deadline := time.Now().Add(e.cfg.Timeout)
	buf := make([]byte, 64)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		n, err := e.term.ReadTimeout(buf, min(e.cfg.PollInterval, remaining))
		if n > 0 && sc.Feed(buf[:n]) {
			break
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !errors.Is(err, ErrWouldBlock) {
				e.log.Debug("reading color reply", slog.String("error", err.Error()))
			}
			time.Sleep(min(e.cfg.RetryDelay, max(time.Until(deadline), 0)))
		}
	}
	return sc.Bytes()
}
