// Package contentwatch reloads the catalog when files in a content directory
// change. It is meant for authoring: edit a topic file, refresh the browser.
package contentwatch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/content"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the tree must be quiet before a reload.
const DefaultDebounce = 300 * time.Millisecond

// LoadFunc builds a catalog from a content directory.
type LoadFunc func(dir string, logger *zap.Logger) (*catalog.Catalog, error)

// Watcher watches a content directory and swaps fresh snapshots into a
// catalog.Holder. A tree that fails to load leaves the current snapshot in
// place.
type Watcher struct {
	dir      string
	holder   *catalog.Holder
	log      *zap.Logger
	load     LoadFunc
	debounce time.Duration

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once

	mu        sync.Mutex
	reloads   int
	failures  int
	lastEvent time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLoader overrides content.LoadDir.
func WithLoader(fn LoadFunc) Option {
	return func(w *Watcher) {
		if fn != nil {
			w.load = fn
		}
	}
}

// New creates a watcher for dir and its topics subdirectory.
func New(dir string, holder *catalog.Holder, logger *zap.Logger, opts ...Option) (*Watcher, error) {
	if holder == nil {
		return nil, errors.New("contentwatch: nil holder")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("contentwatch: %w", err)
	}
	w := &Watcher{
		dir:      dir,
		holder:   holder,
		log:      logger,
		load:     content.LoadDir,
		debounce: DefaultDebounce,
		watcher:  fw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, o := range opts {
		o(w)
	}
	for _, d := range []string{dir, filepath.Join(dir, content.TopicsDir)} {
		if err := fw.Add(d); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("contentwatch: watch %s: %w", d, err)
		}
	}
	return w, nil
}

// Start begins the event loop. It does not block.
func (w *Watcher) Start() {
	go w.run()
	w.log.Info("content watch started", zap.String("dir", w.dir))
}

// Stop ends the event loop and releases the watcher. It is safe to call more
// than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		if err := w.watcher.Close(); err != nil {
			w.log.Warn("content watch close", zap.Error(err))
		}
		w.log.Info("content watch stopped")
	})
}

// Stats reports successful and failed reloads.
func (w *Watcher) Stats() (reloads, failures int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads, w.failures
}

// minTick bounds how often pending events are checked.
const minTick = time.Millisecond

// tickInterval checks three times per debounce window, never faster than
// minTick.
func tickInterval(debounce time.Duration) time.Duration {
	if d := debounce / 3; d > minTick {
		return d
	}
	return minTick
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	tick := time.NewTicker(tickInterval(w.debounce))
	defer tick.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if relevant(ev) {
				w.mu.Lock()
				w.lastEvent = time.Now()
				w.mu.Unlock()
				w.log.Debug("content change", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("content watch error", zap.Error(err))

		case now := <-tick.C:
			w.mu.Lock()
			due := !w.lastEvent.IsZero() && now.Sub(w.lastEvent) >= w.debounce
			if due {
				w.lastEvent = time.Time{}
			}
			w.mu.Unlock()
			if due {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	c, err := w.load(w.dir, w.log)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.failures++
		w.log.Error("content reload failed; keeping current catalog", zap.String("dir", w.dir), zap.Error(err))
		return
	}
	w.reloads++
	w.holder.Swap(c)
	w.log.Info("content reloaded", zap.Int("topics", c.Len()))
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(ev.Name))
	return ext == ".yaml" || ext == ".yml"
}
