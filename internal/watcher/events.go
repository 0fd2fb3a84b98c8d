package watcher

import (
	"context"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"

	"sortd/internal/logging"
)

// probeEventSupport checks whether a native event watcher can be created and
// attached to the directory. The probe watcher is discarded immediately.
func probeEventSupport(dir string) bool {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return false
	}
	defer fw.Close()
	return fw.Add(dir) == nil
}

type eventWatcher struct {
	dir    string
	logger *slog.Logger
}

func newEventWatcher(dir string, logger *slog.Logger) *eventWatcher {
	return &eventWatcher{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "watcher"),
	}
}

func (w *eventWatcher) Name() string { return "events" }

// Watch subscribes to creation and write events for the directory
// (non-recursive) and dispatches each non-directory path. Some applications
// rewrite files in place, so writes are dispatched too; redundant dispatches
// are harmless downstream.
func (w *eventWatcher) Watch(ctx context.Context, dispatch func(path string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
				continue
			}
			dispatch(event.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.Error(err))
		}
	}
}
