package settle

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sortd/internal/config"
	"sortd/internal/logging"
)

// temporarySuffixes are extensions browsers and download managers use for
// in-progress transfers.
var temporarySuffixes = map[string]struct{}{
	".crdownload": {},
	".part":       {},
	".tmp":        {},
	".download":   {},
}

// lockPrefix is the Office-style lock file convention.
const lockPrefix = "~$"

// IsTemporary reports whether a filename looks like an in-progress download
// artifact or an application lock file.
func IsTemporary(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, lockPrefix) {
		return true
	}
	_, ok := temporarySuffixes[strings.ToLower(filepath.Ext(base))]
	return ok
}

// Gate enforces the two-phase quiescence check before a file enters the
// pipeline.
type Gate struct {
	delay  time.Duration
	logger *slog.Logger
}

// New builds a gate using the configured settle delay.
func New(cfg *config.Config, logger *slog.Logger) *Gate {
	return NewWithDelay(time.Duration(cfg.Scan.SettleSeconds)*time.Second, logger)
}

// NewWithDelay builds a gate with an explicit delay (used in tests).
func NewWithDelay(delay time.Duration, logger *slog.Logger) *Gate {
	return &Gate{
		delay:  delay,
		logger: logging.NewComponentLogger(logger, "settle"),
	}
}

// Admit reports whether path may be processed. It rejects missing,
// non-regular, and temporary files, suspends the calling task for the settle
// delay, and re-runs the same checks so a writer that finished (or a rename
// that landed) during the delay is observed. Only the calling goroutine
// blocks; a cancelled context aborts the wait and rejects.
func (g *Gate) Admit(ctx context.Context, path string) bool {
	if !g.check(path) {
		return false
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}

	return g.check(path)
}

func (g *Gate) check(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		// Vanished or unreadable: expected when another task already moved it.
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	if IsTemporary(path) {
		g.logger.Debug("rejecting temporary download artifact",
			logging.String(logging.FieldPath, path),
		)
		return false
	}
	return true
}
