package outercolor

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileNotifier fires when a watched file is written, created or replaced.
// Point it at a terminal config file, or at a marker file a theme-switch hook
// touches, on platforms where SIGUSR1 is unavailable.
type FileNotifier struct {
	path    string
	watcher *fsnotify.Watcher
	log     *slog.Logger
	c       chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewFileNotifier watches path. The parent directory is watched so editors
// that save by rename are still seen.
func NewFileNotifier(path string, logger *slog.Logger) (*FileNotifier, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	n := &FileNotifier{
		path:    abs,
		watcher: watcher,
		log:     logger.With(slog.String("subsystem", "outercolor.watch")),
		c:       make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go n.loop()
	return n, nil
}

func (n *FileNotifier) loop() {
	for {
		select {
		case <-n.done:
			return
		case ev, ok := <-n.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != n.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				n.log.Debug("theme file changed", slog.String("op", ev.Op.String()))
				notify(n.c)
			}
		case err, ok := <-n.watcher.Errors:
			if !ok {
				return
			}
			n.log.Warn("file watcher error", slog.String("error", err.Error()))
		}
	}
}

// C implements Notifier.
func (n *FileNotifier) C() <-chan struct{} { return n.c }

// Stop closes the watcher.
func (n *FileNotifier) Stop() {
	n.once.Do(func() {
		close(n.done)
		_ = n.watcher.Close()
	})
}
