package indexer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher triggers a rebuild when files under the source root change.
// Events are debounced: a burst of writes (an editor save, a git checkout)
// produces one rebuild. Intended for local authoring; the server works fine
// without it.
type Watcher struct {
	builder  *Builder
	root     string
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a Watcher over the given filesystem root.
func NewWatcher(builder *Builder, root string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		builder:  builder,
		root:     root,
		debounce: 2 * time.Second,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, rebuilding after each settled burst of
// filesystem events.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addRecursive(fw, w.root); err != nil {
		return err
	}

	// One timer, stopped and drained before every reset. Resetting a timer
	// that already fired would leave its tick pending and trigger a second
	// rebuild after the debounced one.
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			// New directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				_ = w.addRecursive(fw, event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timerC:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			w.logger.Info("source changed, reindexing", "root", w.root)
			if _, err := w.builder.Rebuild(ctx); err != nil {
				w.logger.Warn("watch-triggered rebuild failed", "error", err)
			}
		}
	}
}

func (w *Watcher) addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The path may have vanished between event and walk.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); name != "." && len(name) > 1 && name[0] == '.' {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
