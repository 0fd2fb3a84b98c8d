package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"sortd/internal/config"
	"sortd/internal/journal"
	"sortd/internal/logging"
	"sortd/internal/sorter"
	"sortd/internal/watcher"
)

// Daemon coordinates the watch loop and enforces single-instance execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *journal.Store
	sorter  *sorter.Sorter
	watcher watcher.Watcher

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	Watcher      string
	JournalPath  string
	LockFilePath string
}

// New constructs a daemon with initialized dependencies. The journal store
// is opened here when enabled; callers own the daemon's lifecycle via
// Start/Stop/Close.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("daemon requires config and logger")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	var store *journal.Store
	var recorder journal.Recorder = journal.Nop{}
	if cfg.Journal.Enabled {
		opened, err := journal.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		store = opened
		recorder = opened
	}

	w, err := watcher.Select(cfg, logger)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("select watcher: %w", err)
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "sortd.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		store:    store,
		sorter:   sorter.New(cfg, recorder, logger),
		watcher:  w,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// WatcherName reports which watch strategy was selected.
func (d *Daemon) WatcherName() string { return d.watcher.Name() }

// Start acquires the daemon lock and launches the watch loop in the
// background.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another sortd instance is already watching this directory")
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)
		if err := d.sorter.Run(runCtx, d.watcher); err != nil && runCtx.Err() == nil {
			d.logger.Error("watch loop failed", logging.Error(err))
		}
	}()

	d.running.Store(true)
	d.logger.Info("sortd daemon started",
		logging.String("watcher", d.watcher.Name()),
		logging.String("lock", d.lockPath),
	)
	return nil
}

// Wait blocks until the watch loop has exited.
func (d *Daemon) Wait() {
	if d.done != nil {
		<-d.done
	}
}

// Stop cancels the watch loop, waits for in-flight tasks to drain, and
// releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.Wait()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("sortd daemon stopped")
}

// Close stops the daemon and releases resources.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	journalPath := ""
	if d.store != nil {
		journalPath = d.store.Path()
	}
	return Status{
		Running:      d.running.Load(),
		Watcher:      d.watcher.Name(),
		JournalPath:  journalPath,
		LockFilePath: d.lockPath,
	}
}
