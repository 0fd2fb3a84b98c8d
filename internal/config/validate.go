package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRoutes(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateJournal()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.WatchDir) == "" {
		return errors.New("paths.watch_dir must be set")
	}
	if strings.TrimSpace(c.Paths.DestRoot) == "" {
		return errors.New("paths.dest_root must be set")
	}
	if c.Paths.WatchDir == c.Paths.DestRoot {
		return errors.New("paths.dest_root must differ from paths.watch_dir")
	}
	return nil
}

func (c *Config) validateRoutes() error {
	if len(c.Routes) == 0 {
		return errors.New("at least one [[routes]] entry must be configured")
	}
	for i, route := range c.Routes {
		if route.Pattern == "" {
			return fmt.Errorf("routes[%d].pattern must be set", i)
		}
		if route.Folder == "" {
			return fmt.Errorf("routes[%d].folder must be set (pattern %q)", i, route.Pattern)
		}
		if route.Folder != filepath.Base(route.Folder) || route.Folder == ".." || route.Folder == "." {
			return fmt.Errorf("routes[%d].folder %q must be a bare folder name", i, route.Folder)
		}
	}
	return nil
}

func (c *Config) validateScan() error {
	if err := ensurePositiveMap(map[string]int{
		"scan.settle_seconds": c.Scan.SettleSeconds,
		"scan.poll_seconds":   c.Scan.PollSeconds,
		"scan.max_workers":    c.Scan.MaxWorkers,
	}); err != nil {
		return err
	}
	switch c.Scan.Strategy {
	case "auto", "events", "poll":
	default:
		return fmt.Errorf("scan.strategy: unsupported value %q (expected auto, events, or poll)", c.Scan.Strategy)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateJournal() error {
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return errors.New("journal.path must be set when journal.enabled is true")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
