package sorter

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"sortd/internal/logging"
	"sortd/internal/settle"
	"sortd/internal/watcher"
)

// Summary aggregates the outcomes of a scan pass.
type Summary struct {
	Moved     int
	Skipped   int
	Unmatched int
	Failed    int
}

func (s *Summary) add(result Result, err error) {
	switch {
	case err != nil:
		s.Failed++
	case result.Outcome == OutcomeMoved:
		s.Moved++
	case result.Outcome == OutcomeUnmatched:
		s.Unmatched++
	default:
		s.Skipped++
	}
}

// ScanExisting processes every file already present in the watched directory,
// one at a time. Temporary artifacts are skipped without entering the
// pipeline so a scan over a busy downloads folder stays quiet.
func (s *Sorter) ScanExisting(ctx context.Context) (Summary, error) {
	var summary Summary

	entries, err := os.ReadDir(s.cfg.Paths.WatchDir)
	if err != nil {
		return summary, err
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		if entry.IsDir() || settle.IsTemporary(entry.Name()) {
			continue
		}
		path := filepath.Join(s.cfg.Paths.WatchDir, entry.Name())
		result, err := s.Process(ctx, path)
		if err != nil {
			s.logger.Error("processing failed", logging.String(logging.FieldPath, path), logging.Error(err))
		}
		summary.add(result, err)
	}

	return summary, nil
}

// Run performs the initial scan and then consumes watcher dispatches until
// ctx is cancelled. Each dispatch becomes a worker-pool task; at most
// cfg.Scan.MaxWorkers run concurrently, and Run waits for in-flight tasks to
// finish before returning.
func (s *Sorter) Run(ctx context.Context, w watcher.Watcher) error {
	if _, err := s.ScanExisting(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("initial scan failed", logging.Error(err))
	}

	workers := s.cfg.Scan.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	dispatch := func(path string) {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if _, err := s.Process(ctx, path); err != nil {
				s.logger.Error("processing failed", logging.String(logging.FieldPath, path), logging.Error(err))
			}
		}()
	}

	err := w.Watch(ctx, dispatch)
	wg.Wait()
	return err
}
