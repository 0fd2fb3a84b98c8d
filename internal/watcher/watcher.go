package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sortd/internal/config"
)

// Watcher observes a single directory and hands candidate paths to the
// dispatch callback. Watch blocks until the context is cancelled.
type Watcher interface {
	// Name identifies the strategy for the startup status line.
	Name() string
	Watch(ctx context.Context, dispatch func(path string)) error
}

// Select picks a watch strategy per configuration. Strategy "auto" probes
// for native filesystem-event support and falls back to polling when the
// probe fails; "events" and "poll" force their respective strategies.
func Select(cfg *config.Config, logger *slog.Logger) (Watcher, error) {
	interval := time.Duration(cfg.Scan.PollSeconds) * time.Second

	switch cfg.Scan.Strategy {
	case "events":
		return newEventWatcher(cfg.Paths.WatchDir, logger), nil
	case "poll":
		return newPollWatcher(cfg.Paths.WatchDir, interval, logger), nil
	case "auto":
		if probeEventSupport(cfg.Paths.WatchDir) {
			return newEventWatcher(cfg.Paths.WatchDir, logger), nil
		}
		return newPollWatcher(cfg.Paths.WatchDir, interval, logger), nil
	default:
		return nil, fmt.Errorf("unknown watch strategy %q", cfg.Scan.Strategy)
	}
}
