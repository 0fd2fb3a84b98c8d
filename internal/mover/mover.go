package mover

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"sortd/internal/config"
	"sortd/internal/fileutil"
	"sortd/internal/logging"
)

// maxProbeAttempts bounds collision probing so a pathological directory
// cannot spin the pipeline forever.
const maxProbeAttempts = 10000

// Mover performs the final relocation step of the pipeline.
type Mover struct {
	destRoot string
	logger   *slog.Logger
}

// New constructs a Mover rooted at the configured destination directory.
func New(cfg *config.Config, logger *slog.Logger) *Mover {
	return &Mover{
		destRoot: cfg.Paths.DestRoot,
		logger:   logging.NewComponentLogger(logger, "mover"),
	}
}

// Move relocates path into the named folder under the destination root and
// returns the final path actually used. Errors propagate to the caller; the
// per-file task ends and no retry is attempted.
func (m *Mover) Move(path, folder string) (string, error) {
	destDir := filepath.Join(m.destRoot, folder)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure destination %q: %w", destDir, err)
	}

	target, err := nextFreePath(destDir, filepath.Base(path))
	if err != nil {
		return "", err
	}

	if err := os.Rename(path, target); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
			if copyErr := fileutil.MoveFile(path, target); copyErr != nil {
				return "", fmt.Errorf("move across filesystems: %w", copyErr)
			}
		} else {
			return "", fmt.Errorf("move %q: %w", path, err)
		}
	}

	m.logger.Info(fmt.Sprintf("Moved: %s -> %s", filepath.Base(path), target))
	return target, nil
}

// nextFreePath returns destDir/name, or the first " (n)" variant that does
// not already exist. The suffix goes before the extension: a.txt, a (1).txt,
// a (2).txt.
func nextFreePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, name)
	if _, err := os.Stat(target); errors.Is(err, os.ErrNotExist) {
		return target, nil
	} else if err != nil {
		return "", fmt.Errorf("probe %q: %w", target, err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; i <= maxProbeAttempts; i++ {
		candidate := filepath.Join(destDir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("probe %q: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("exhausted collision suffixes for %q in %s", name, destDir)
}
