package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 150 * time.Millisecond

// Watch reloads the catalog whenever one of its files changes on disk, until
// ctx is cancelled. The data directory is watched rather than the files so
// that editors which save by rename are picked up. Bursts of events are
// debounced into a single reload. onReload, if non-nil, runs after every
// reload that replaced the tables.
func (c *Catalog) Watch(ctx context.Context, logger *slog.Logger, onReload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	root := c.store.Root()
	if err := w.Add(root); err != nil {
		return err
	}

	watched := make(map[string]struct{}, 2)
	for _, p := range c.Paths() {
		watched[filepath.Join(root, filepath.Clean(p))] = struct{}{}
	}

	logger.Info("catalog watcher: started", slog.String("root", root))

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("catalog watcher: stopped")
			return nil

		case <-timerCh:
			changed, err := c.Reload()
			if err != nil {
				logger.Warn("catalog watcher: reload failed", slog.String("error", err.Error()))
				continue
			}
			if changed {
				logger.Info("catalog watcher: reloaded")
				if onReload != nil {
					onReload()
				}
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, ok := watched[filepath.Clean(ev.Name)]; !ok {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Debug("catalog watcher: event", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
				timerCh = timer.C
			} else {
				timer.Reset(reloadDelay)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("catalog watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
