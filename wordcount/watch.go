package wordcount

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for a burst of change events
// to end. Saving a file usually truncates it and then writes it, which
// produces several events.
const DefaultDebounce = 100 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithLogger sets the logger for the watcher.
func WithLogger(logger *zap.Logger) WatchOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithPollInterval sets how often the polling fallback checks the file.
// Non-positive values keep DefaultPollInterval.
func WithPollInterval(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// WithDebounce sets how long the file must stay quiet after a change event
// before it is recounted. Non-positive values keep DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithForcePolling skips fsnotify and always polls.
func WithForcePolling() WatchOption {
	return func(w *Watcher) {
		w.forcePolling = true
	}
}

// Watcher re-counts a file each time it changes.
type Watcher struct {
	path     string
	counter  *Counter
	onChange func(*Table)

	logger       *zap.Logger
	pollInterval time.Duration
	debounce     time.Duration
	forcePolling bool
}

// NewWatcher creates a watcher that calls onChange with a fresh table for
// the initial contents of path and again after every change.
func NewWatcher(path string, counter *Counter, onChange func(*Table), opts ...WatchOption) *Watcher {
	w := &Watcher{
		path:         path,
		counter:      counter,
		onChange:     onChange,
		logger:       zap.NewNop(),
		pollInterval: DefaultPollInterval,
		debounce:     DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run counts the file once, then keeps watching until ctx is cancelled.
// Only the initial count can fail; later read errors are logged and the
// watcher waits for the next change.
func (w *Watcher) Run(ctx context.Context) error {
	table, err := w.counter.CountFile(w.path)
	if err != nil {
		return err
	}
	w.onChange(table)

	if w.forcePolling {
		w.poll(ctx)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn("fsnotify unavailable, falling back to polling", zap.Error(err))
		w.poll(ctx)
		return nil
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file rather than write it.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.logger.Warn("cannot watch directory, falling back to polling",
			zap.String("dir", filepath.Dir(w.path)), zap.Error(err))
		w.poll(ctx)
		return nil
	}

	w.watch(ctx, watcher)
	return nil
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(w.path)

	// Each event pushes the recount back; it runs once the burst is over.
	settle := time.NewTimer(w.debounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("input changed", zap.String("path", w.path), zap.String("op", event.Op.String()))
			settle.Reset(w.debounce)

		case <-settle.C:
			w.recount()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// poll recounts only after the file has looked the same for a full
// interval, and discards a count if the file changed while it was read.
func (w *Watcher) poll(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	last, err := os.Stat(w.path)
	if err != nil {
		// A nil last makes the first successful stat count as a change.
		w.logger.Debug("initial stat failed", zap.String("path", w.path), zap.Error(err))
	}
	pending := false
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if !sameState(last, info) {
				last = info
				pending = true
				continue
			}
			if !pending {
				continue
			}

			table, err := w.counter.CountFile(w.path)
			if err != nil {
				w.logger.Warn("recount failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			if after, err := os.Stat(w.path); err != nil || !sameState(last, after) {
				continue
			}
			pending = false
			w.logger.Debug("input changed", zap.String("path", w.path))
			w.onChange(table)
		}
	}
}

func sameState(a, b os.FileInfo) bool {
	return a != nil && b != nil && a.ModTime().Equal(b.ModTime()) && a.Size() == b.Size()
}

func (w *Watcher) recount() {
	table, err := w.counter.CountFile(w.path)
	if err != nil {
		w.logger.Warn("recount failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.onChange(table)
}
