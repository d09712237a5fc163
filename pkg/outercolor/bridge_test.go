package outercolor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualNotifier fires when the test says so.
type manualNotifier struct {
	c       chan struct{}
	stopped atomic.Bool
}

func newManualNotifier() *manualNotifier {
	return &manualNotifier{c: make(chan struct{}, 1)}
}

func (m *manualNotifier) C() <-chan struct{} { return m.c }
func (m *manualNotifier) Stop()              { m.stopped.Store(true) }
func (m *manualNotifier) fire()              { m.c <- struct{}{} }

func (m *manualNotifier) factory() NotifierFactory {
	return func() (Notifier, error) { return m, nil }
}

func runBridge(t *testing.T, b *Bridge, ctx context.Context) <-chan struct{} {
	t.Helper()
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		b.Run(ctx)
	}()
	return exited
}

func waitClosed(t *testing.T, c <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-c:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestBridge_EmitsCacheSnapshotPerNotification(t *testing.T) {
	cache := NewCache()
	before := TerminalColors{Background: RGB{R: 1, G: 1, B: 1}, HasBackground: true}
	cache.Set(before)

	n := newManualNotifier()
	q := NewEventQueue()
	defer q.Close()
	b := NewBridge(cache, n.factory(), q, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runBridge(t, b, ctx)

	n.fire()
	assert.Equal(t, before, recv(t, q.Events()).Colors)

	after := TerminalColors{Foreground: RGB{R: 9, G: 9, B: 9}, HasForeground: true}
	cache.Set(after)
	n.fire()
	assert.Equal(t, after, recv(t, q.Events()).Colors)
}

func TestBridge_StopsWhenReceiverCloses(t *testing.T) {
	n := newManualNotifier()
	q := NewEventQueue()
	q.Close()
	b := NewBridge(NewCache(), n.factory(), q, nil)

	exited := runBridge(t, b, context.Background())
	n.fire()

	waitClosed(t, exited, "bridge exit")
	assert.True(t, n.stopped.Load(), "notifier must be released")
}

func TestBridge_StopsOnContextCancel(t *testing.T) {
	n := newManualNotifier()
	b := NewBridge(NewCache(), n.factory(), NewEventQueue(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	exited := runBridge(t, b, ctx)
	cancel()

	waitClosed(t, exited, "bridge exit")
	assert.True(t, n.stopped.Load())
}

func TestBridge_RegistrationFailureIsInert(t *testing.T) {
	var sent atomic.Int32
	sink := SenderFunc(func(ThemeChangeEvent) error {
		sent.Add(1)
		return nil
	})
	failing := func() (Notifier, error) { return nil, errors.New("no signal support") }
	b := NewBridge(NewCache(), failing, sink, nil)

	exited := runBridge(t, b, context.Background())
	waitClosed(t, exited, "bridge exit")
	assert.Zero(t, sent.Load())
}

func TestBridge_NopNotifierExitsImmediately(t *testing.T) {
	b := NewBridge(NewCache(), func() (Notifier, error) { return NopNotifier(), nil }, NewEventQueue(), nil)
	exited := runBridge(t, b, context.Background())
	waitClosed(t, exited, "bridge exit")
}

func TestOuter_ListenDeliversEvents(t *testing.T) {
	n := newManualNotifier()
	o := New(Options{Terminal: &fakeTerminal{}, NewNotifier: n.factory()})
	o.SetColors(TerminalColors{Background: RGB{R: 7}, HasBackground: true})

	q := NewEventQueue()
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	o.ListenContext(ctx, q)

	n.fire()
	ev := recv(t, q.Events())
	require.True(t, ev.Colors.HasBackground)
	assert.Equal(t, RGB{R: 7}, ev.Colors.Background)
}
