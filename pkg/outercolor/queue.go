package outercolor

import (
	"errors"
	"sync"
)

// ErrReceiverClosed is returned by a Sender whose consumer has gone away.
var ErrReceiverClosed = errors.New("theme change receiver closed")

// Sender accepts theme change events for the application's event loop.
// Send must not block for long; it returns an error once the receiver is
// gone, which stops the bridge.
type Sender interface {
	Send(ThemeChangeEvent) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ThemeChangeEvent) error

// Send implements Sender.
func (f SenderFunc) Send(ev ThemeChangeEvent) error { return f(ev) }

// EventQueue is an unbounded, ordered queue of ThemeChangeEvents. Send never
// blocks on a slow consumer. The consumer hangs up with Close.
type EventQueue struct {
	in   chan ThemeChangeEvent
	out  chan ThemeChangeEvent
	done chan struct{}
	once sync.Once
}

var _ Sender = (*EventQueue)(nil)

// NewEventQueue starts a queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{
		in:   make(chan ThemeChangeEvent),
		out:  make(chan ThemeChangeEvent),
		done: make(chan struct{}),
	}
	go q.pump()
	return q
}

func (q *EventQueue) pump() {
	defer close(q.out)
	var pending []ThemeChangeEvent
	for {
		var out chan ThemeChangeEvent
		var next ThemeChangeEvent
		if len(pending) > 0 {
			out = q.out
			next = pending[0]
		}
		select {
		case <-q.done:
			return
		case ev := <-q.in:
			pending = append(pending, ev)
		case out <- next:
			pending[0] = ThemeChangeEvent{}
			pending = pending[1:]
		}
	}
}

// Send enqueues ev, or returns ErrReceiverClosed after Close.
func (q *EventQueue) Send(ev ThemeChangeEvent) error {
	select {
	case <-q.done:
		return ErrReceiverClosed
	default:
	}
	select {
	case <-q.done:
		return ErrReceiverClosed
	case q.in <- ev:
		return nil
	}
}

// Events returns the receive side. It is closed after Close.
func (q *EventQueue) Events() <-chan ThemeChangeEvent {
	return q.out
}

// Close hangs up the receiver. Queued events are dropped.
func (q *EventQueue) Close() {
	q.once.Do(func() { close(q.done) })
}
