//go:build unix

package outercolor

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type signalNotifier struct {
	sigs chan os.Signal
	c    chan struct{}
	done chan struct{}
	once sync.Once
}

// NewSignalNotifier fires on SIGUSR1, the conventional "theme changed" nudge
// sent by desktop theme switchers.
func NewSignalNotifier() (Notifier, error) {
	n := &signalNotifier{
		sigs: make(chan os.Signal, 1),
		c:    make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	signal.Notify(n.sigs, syscall.SIGUSR1)
	go n.loop()
	return n, nil
}

func (n *signalNotifier) loop() {
	for {
		select {
		case <-n.done:
			return
		case <-n.sigs:
			notify(n.c)
		}
	}
}

func (n *signalNotifier) C() <-chan struct{} { return n.c }

func (n *signalNotifier) Stop() {
	n.once.Do(func() {
		signal.Stop(n.sigs)
		close(n.done)
	})
}
