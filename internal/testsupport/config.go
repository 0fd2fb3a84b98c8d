// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Settle and poll timings are zeroed out so pipeline tests run fast.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.WatchDir = filepath.Join(base, "downloads")
	cfg.Paths.DestRoot = filepath.Join(base, "sorted")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Scan.SettleSeconds = 0
	cfg.Journal.Enabled = false
	cfg.Journal.Path = filepath.Join(base, "journal.db")

	for _, dir := range []string{cfg.Paths.WatchDir, cfg.Paths.DestRoot, cfg.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithRoutes replaces the route table on the test config.
func WithRoutes(routes ...config.Route) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Routes = routes
	}
}

// WithJournal enables the journal on the test config.
func WithJournal() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Journal.Enabled = true
	}
}

// WriteFile creates a file with the given name and body inside dir.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
