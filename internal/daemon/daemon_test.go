package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sortd/internal/config"
	"sortd/internal/logging"
	"sortd/internal/testsupport"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithRoutes(
		config.Route{Pattern: "invoice", Folder: "Finance"},
	))
	cfg.Scan.PollSeconds = 1
	return cfg
}

func TestStartRejectsSecondInstance(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer first.Close()

	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	second, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer second.Close()

	if err := second.Start(context.Background()); err == nil {
		second.Stop()
		t.Fatal("second instance should fail to acquire the lock")
	}

	first.Stop()

	// The released lock must be acquirable again.
	if err := second.Start(context.Background()); err != nil {
		t.Fatalf("Start after release: %v", err)
	}
	second.Stop()
}

func TestDaemonMovesDroppedFile(t *testing.T) {
	cfg := testConfig(t)

	d, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer d.Close()

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Give the watch loop a moment before dropping the file.
	time.Sleep(100 * time.Millisecond)
	source := filepath.Join(cfg.Paths.WatchDir, "invoice 2026.pdf")
	if err := os.WriteFile(source, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(cfg.Paths.DestRoot, "Finance", "invoice 2026.pdf")
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(target); err == nil {
			d.Stop()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	d.Stop()
	t.Fatalf("file never arrived at %q", target)
}

func TestStatusReportsRuntimeState(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithRoutes(config.Route{Pattern: "invoice", Folder: "Finance"}),
		testsupport.WithJournal(),
	)

	d, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer d.Close()

	status := d.Status()
	if status.Running {
		t.Fatal("daemon should not report running before Start")
	}
	if status.JournalPath != cfg.Journal.Path {
		t.Fatalf("unexpected journal path %q", status.JournalPath)
	}
	if status.LockFilePath == "" || status.Watcher == "" {
		t.Fatalf("incomplete status: %+v", status)
	}

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !d.Status().Running {
		t.Fatal("daemon should report running after Start")
	}
	d.Stop()
	if d.Status().Running {
		t.Fatal("daemon should not report running after Stop")
	}
}
