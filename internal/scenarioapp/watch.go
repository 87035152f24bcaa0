// internal/scenarioapp/watch.go
package scenarioapp

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports scenario files that changed, once their edits settle.
// It watches the parent directories so editors that replace files on save
// are still seen.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	files       map[string]string // cleaned absolute path -> path as given
	debounceMap map[string]time.Time
	debounceDur time.Duration
	changes     chan []string
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	log         *zap.Logger
}

// NewWatcher prepares a watcher for files; debounce <= 0 uses 300ms.
func NewWatcher(files []string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		watcher:     fw,
		files:       make(map[string]string, len(files)),
		debounceMap: make(map[string]time.Time),
		debounceDur: debounce,
		changes:     make(chan []string, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		log:         log,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch: %s: %w", f, err)
		}
		w.files[filepath.Clean(abs)] = f
	}
	return w, nil
}

// Changes delivers batches of changed files, as given to NewWatcher.
func (w *Watcher) Changes() <-chan []string { return w.changes }

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	dirs := map[string]bool{}
	for abs := range w.files {
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.watcher.Add(d); err != nil {
			return fmt.Errorf("watch: %s: %w", d, err)
		}
		w.log.Debug("watching directory", zap.String("dir", d))
	}

	w.running = true
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for cleanup.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("closing watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := time.NewTicker(w.debounceDur / 4)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-tick.C:
			if batch := w.settled(); len(batch) > 0 {
				select {
				case w.changes <- batch:
				case <-ctx.Done():
					return
				case <-w.stopCh:
					return
				}
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}
	given, ok := w.files[filepath.Clean(abs)]
	if !ok {
		return
	}
	w.log.Debug("scenario changed", zap.String("file", given), zap.String("op", ev.Op.String()))
	w.mu.Lock()
	w.debounceMap[given] = time.Now()
	w.mu.Unlock()
}

// settled drains files whose last event is older than the debounce window.
func (w *Watcher) settled() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	var out []string
	for f, t := range w.debounceMap {
		if now.Sub(t) >= w.debounceDur {
			out = append(out, f)
			delete(w.debounceMap, f)
		}
	}
	sort.Strings(out)
	return out
}
