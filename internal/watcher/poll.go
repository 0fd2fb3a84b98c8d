package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sortd/internal/logging"
)

type pollWatcher struct {
	dir      string
	interval time.Duration
	logger   *slog.Logger
}

func newPollWatcher(dir string, interval time.Duration, logger *slog.Logger) *pollWatcher {
	return &pollWatcher{
		dir:      dir,
		interval: interval,
		logger:   logging.NewComponentLogger(logger, "watcher"),
	}
}

func (w *pollWatcher) Name() string { return "poll" }

// Watch lists the directory every interval and dispatches names absent from
// the previous snapshot. The seen set is primed at startup so pre-existing
// files are left to the initial scan.
func (w *pollWatcher) Watch(ctx context.Context, dispatch func(path string)) error {
	seen, err := w.snapshot()
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			current, err := w.snapshot()
			if err != nil {
				w.logger.Warn("directory listing failed", logging.Error(err))
				continue
			}
			for name := range current {
				if _, ok := seen[name]; !ok {
					dispatch(filepath.Join(w.dir, name))
				}
			}
			seen = current
		}
	}
}

func (w *pollWatcher) snapshot() (map[string]struct{}, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names[entry.Name()] = struct{}{}
	}
	return names, nil
}
