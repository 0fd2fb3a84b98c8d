package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sortd/internal/config"
)

func TestRunAllPassesForWritableDirectories(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.WatchDir = t.TempDir()
	cfg.Paths.DestRoot = t.TempDir()

	results := RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(results))
	}
	if !AllPassed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}
}

func TestCheckDirectoryAccessMissing(t *testing.T) {
	result := CheckDirectoryAccess("Watched directory", filepath.Join(t.TempDir(), "absent"))
	if result.Passed {
		t.Fatal("missing directory must fail the check")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestCheckDirectoryAccessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("Destination root", path)
	if result.Passed {
		t.Fatal("a regular file must fail the directory check")
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil results for nil config, got %+v", results)
	}
}
