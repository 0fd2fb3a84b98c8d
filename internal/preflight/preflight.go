package preflight

import (
	"sortd/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Watched directory", cfg.Paths.WatchDir),
		CheckDirectoryAccess("Destination root", cfg.Paths.DestRoot),
		CheckFreeSpace("Destination free space", cfg.Paths.DestRoot),
	}

	return results
}

// AllPassed reports whether every check in results succeeded.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
