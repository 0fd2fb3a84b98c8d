package sorter

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"sortd/internal/config"
	"sortd/internal/journal"
	"sortd/internal/logging"
	"sortd/internal/testsupport"
)

type captureRecorder struct {
	mu      sync.Mutex
	entries []journal.Entry
}

func (c *captureRecorder) Record(_ context.Context, entry journal.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
	return nil
}

func (c *captureRecorder) snapshot() []journal.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]journal.Entry(nil), c.entries...)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithRoutes(
		config.Route{Pattern: "*.png", Folder: "Images"},
		config.Route{Pattern: "invoice", Folder: "Finance"},
		config.Route{Pattern: "report", Folder: "Reports"},
	))
	cfg.Scan.ContentExtensions = []string{".txt"}
	return cfg
}

func writeWatched(t *testing.T, cfg *config.Config, name, body string) string {
	t.Helper()
	return testsupport.WriteFile(t, cfg.Paths.WatchDir, name, body)
}

func TestProcessMovesOnFilenameKeyword(t *testing.T) {
	cfg := testConfig(t)
	rec := &captureRecorder{}
	s := New(cfg, rec, logging.NewNop())

	path := writeWatched(t, cfg, "Invoice March.pdf", "x")
	result, err := s.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Outcome != OutcomeMoved {
		t.Fatalf("expected move, got %v", result.Outcome)
	}

	want := filepath.Join(cfg.Paths.DestRoot, "Finance", "Invoice March.pdf")
	if result.FinalPath != want {
		t.Fatalf("expected final path %q, got %q", want, result.FinalPath)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("moved file missing: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("source file should be gone after the move")
	}

	entries := rec.snapshot()
	if len(entries) != 1 {
		t.Fatalf("expected one journal entry, got %d", len(entries))
	}
	if entries[0].Folder != "Finance" || entries[0].Phase != "filename" {
		t.Fatalf("unexpected journal entry: %+v", entries[0])
	}
}

func TestProcessMovesOnContentKeyword(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, nil, logging.NewNop())

	path := writeWatched(t, cfg, "meeting notes.txt", "quarterly report attached")
	result, err := s.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Outcome != OutcomeMoved || result.Decision.Folder != "Reports" {
		t.Fatalf("expected content match into Reports, got %+v", result)
	}
	if result.Decision.Phase.String() != "content" {
		t.Fatalf("expected content phase, got %v", result.Decision.Phase)
	}
}

func TestProcessLeavesUnmatchedInPlace(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, nil, logging.NewNop())

	path := writeWatched(t, cfg, "mystery.bin", "nothing to see")
	result, err := s.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Outcome != OutcomeUnmatched {
		t.Fatalf("expected unmatched, got %v", result.Outcome)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("unmatched file must stay in place: %v", err)
	}
}

func TestProcessSkipsTemporaryArtifact(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, nil, logging.NewNop())

	path := writeWatched(t, cfg, "invoice.pdf.part", "x")
	result, err := s.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Outcome != OutcomeSkipped {
		t.Fatalf("expected skip for temporary artifact, got %v", result.Outcome)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("temporary file must stay in place: %v", err)
	}
}

func TestProcessSkipsConcurrentDuplicate(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, nil, logging.NewNop())

	path := writeWatched(t, cfg, "invoice.pdf", "x")
	if !s.begin(path) {
		t.Fatal("begin should succeed for an idle path")
	}
	defer s.end(path)

	result, err := s.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Outcome != OutcomeSkipped {
		t.Fatalf("second task on the same path must skip, got %v", result.Outcome)
	}
}

func TestScanExistingSummarizesOutcomes(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, nil, logging.NewNop())

	writeWatched(t, cfg, "invoice one.pdf", "x")
	writeWatched(t, cfg, "photo.PNG", "x")
	writeWatched(t, cfg, "mystery.bin", "x")
	writeWatched(t, cfg, "partial.crdownload", "x")
	if err := os.Mkdir(filepath.Join(cfg.Paths.WatchDir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	summary, err := s.ScanExisting(context.Background())
	if err != nil {
		t.Fatalf("ScanExisting: %v", err)
	}
	if summary.Moved != 2 {
		t.Fatalf("expected 2 moves, got %+v", summary)
	}
	if summary.Unmatched != 1 {
		t.Fatalf("expected 1 unmatched, got %+v", summary)
	}
	if summary.Failed != 0 {
		t.Fatalf("expected no failures, got %+v", summary)
	}
}

type scriptedWatcher struct {
	paths []string
}

func (w *scriptedWatcher) Name() string { return "scripted" }

func (w *scriptedWatcher) Watch(_ context.Context, dispatch func(path string)) error {
	for _, p := range w.paths {
		dispatch(p)
	}
	return nil
}

func TestRunDrainsDispatchedTasks(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scan.MaxWorkers = 2
	s := New(cfg, nil, logging.NewNop())

	var paths []string
	for _, name := range []string{"invoice a.pdf", "invoice b.pdf", "invoice c.pdf"} {
		paths = append(paths, writeWatched(t, cfg, name, "x"))
	}

	if err := s.Run(context.Background(), &scriptedWatcher{paths: paths}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{"invoice a.pdf", "invoice b.pdf", "invoice c.pdf"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.DestRoot, "Finance", name)); err != nil {
			t.Fatalf("expected %q in Finance: %v", name, err)
		}
	}
}
