package outercolor

import "sync"

// Notifier delivers "the theme may have changed" notifications.
type Notifier interface {
	// C returns the notification channel. A nil channel means the source can
	// never fire on this platform.
	C() <-chan struct{}
	// Stop releases the underlying OS resources. It is safe to call twice.
	Stop()
}

// NotifierFactory creates a Notifier. Bridges call it from their own
// goroutine so registration failures stay local to the bridge.
type NotifierFactory func() (Notifier, error)

// notify performs a coalescing, non-blocking send.
func notify(c chan struct{}) {
	select {
	case c <- struct{}{}:
	default:
	}
}

type nopNotifier struct{}

func (nopNotifier) C() <-chan struct{} { return nil }
func (nopNotifier) Stop()              {}

// NopNotifier never fires.
func NopNotifier() Notifier { return nopNotifier{} }

// MultiNotifier fans several notifiers into one. Sources with a nil channel
// are skipped; if every source is nil the result never fires.
type MultiNotifier struct {
	sources []Notifier
	c       chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewMultiNotifier merges sources.
func NewMultiNotifier(sources ...Notifier) *MultiNotifier {
	m := &MultiNotifier{
		sources: sources,
		done:    make(chan struct{}),
	}
	live := 0
	for _, s := range sources {
		if s.C() != nil {
			live++
		}
	}
	if live == 0 {
		return m
	}
	m.c = make(chan struct{}, 1)
	for _, s := range sources {
		if ch := s.C(); ch != nil {
			go m.forward(ch)
		}
	}
	return m
}

func (m *MultiNotifier) forward(ch <-chan struct{}) {
	for {
		select {
		case <-m.done:
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			notify(m.c)
		}
	}
}

// C implements Notifier.
func (m *MultiNotifier) C() <-chan struct{} {
	if m.c == nil {
		return nil
	}
	return m.c
}

// Stop stops every source.
func (m *MultiNotifier) Stop() {
	m.once.Do(func() {
		close(m.done)
		for _, s := range m.sources {
			s.Stop()
		}
	})
}
