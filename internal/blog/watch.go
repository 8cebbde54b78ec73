package blog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates the index whenever the blogs directory changes. It
// blocks until ctx is done.
func (x *Index) Watch(ctx context.Context, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(x.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", x.Dir, err)
	}
	logger.Debug("watching blogs", "dir", x.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			logger.Debug("blog changed", "file", ev.Name, "op", ev.Op.String())
			x.Invalidate()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("blog watcher error", "error", err)
		}
	}
}
