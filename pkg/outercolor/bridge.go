package outercolor

import (
	"context"
	"log/slog"
)

// Bridge turns theme-change notifications into ThemeChangeEvents.
//
// On each notification it snapshots the cache, without re-querying, and
// hands the snapshot to the sink. Re-querying is left to the owner of the
// event loop, which must first leave the alternate screen.
type Bridge struct {
	cache       *Cache
	newNotifier NotifierFactory
	sink        Sender
	log         *slog.Logger
}

// NewBridge returns a bridge reading cache and notifying sink. A nil factory
// uses NewSignalNotifier.
func NewBridge(cache *Cache, newNotifier NotifierFactory, sink Sender, logger *slog.Logger) *Bridge {
	if newNotifier == nil {
		newNotifier = NewSignalNotifier
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		cache:       cache,
		newNotifier: newNotifier,
		sink:        sink,
		log:         logger.With(slog.String("subsystem", "outercolor.bridge")),
	}
}

// Run forwards notifications until the sink reports its receiver closed or
// ctx is done. A notifier that cannot be registered is logged and Run
// returns; the rest of the process is unaffected.
func (b *Bridge) Run(ctx context.Context) {
	n, err := b.newNotifier()
	if err != nil {
		b.log.Warn("theme change detection unavailable", slog.String("error", err.Error()))
		return
	}
	defer n.Stop()

	c := n.C()
	if c == nil {
		b.log.Debug("no theme change source on this platform")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-c:
			if !ok {
				return
			}
			ev := ThemeChangeEvent{Colors: b.cache.Get()}
			if err := b.sink.Send(ev); err != nil {
				b.log.Debug("theme change receiver gone, stopping", slog.String("error", err.Error()))
				return
			}
		}
	}
}

// Spawn runs the bridge in a new goroutine. It stops only when the sink's
// receiver closes.
func (b *Bridge) Spawn() {
	go b.Run(context.Background())
}
