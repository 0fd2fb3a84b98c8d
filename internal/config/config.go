package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	WatchDir string `toml:"watch_dir"`
	DestRoot string `toml:"dest_root"`
	LogDir   string `toml:"log_dir"`
}

// Route maps a filename pattern or keyword to a destination folder name.
// Patterns containing any of * ? [ ] are treated as shell globs; everything
// else is a case-insensitive keyword. Routes are matched in declaration
// order, so duplicate patterns with different folders are permitted and the
// first hit wins within each match phase.
type Route struct {
	Pattern string `toml:"pattern"`
	Folder  string `toml:"folder"`
}

// Scan contains settling, polling, and dispatch settings for the watch loop.
type Scan struct {
	// Strategy selects the watch mechanism: "auto", "events", or "poll".
	Strategy          string   `toml:"strategy"`
	SettleSeconds     int      `toml:"settle_seconds"`
	PollSeconds       int      `toml:"poll_seconds"`
	MaxWorkers        int      `toml:"max_workers"`
	ContentExtensions []string `toml:"content_extensions"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Journal contains configuration for the move-history database.
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config encapsulates all configuration values for sortd.
//
// Sections by subsystem:
//   - Paths: watched directory, destination root, log directory
//   - Routes: ordered pattern-to-folder rules
//   - Scan: settle/poll timing, dispatch bound, content-scan extensions
//   - Logging: log format and level
//   - Journal: optional sqlite record of completed moves
type Config struct {
	Paths   Paths   `toml:"paths"`
	Routes  []Route `toml:"routes"`
	Scan    Scan    `toml:"scan"`
	Logging Logging `toml:"logging"`
	Journal Journal `toml:"journal"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sortd/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. When no file exists at
// the resolved location, defaults are returned with exists=false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// go-toml appends decoded array-of-tables to pre-populated slices,
		// so slice defaults are withheld until we know the file omits them.
		defaultRoutes := cfg.Routes
		defaultExtensions := cfg.Scan.ContentExtensions
		cfg.Routes = nil
		cfg.Scan.ContentExtensions = nil

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
		if len(cfg.Routes) == 0 {
			cfg.Routes = defaultRoutes
		}
		if cfg.Scan.ContentExtensions == nil {
			cfg.Scan.ContentExtensions = defaultExtensions
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("sortd.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	for _, entry := range []struct {
		name  string
		value *string
	}{
		{"paths.watch_dir", &c.Paths.WatchDir},
		{"paths.dest_root", &c.Paths.DestRoot},
		{"paths.log_dir", &c.Paths.LogDir},
		{"journal.path", &c.Journal.Path},
	} {
		if strings.TrimSpace(*entry.value) == "" {
			continue
		}
		expanded, err := expandPath(*entry.value)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.name, err)
		}
		*entry.value = expanded
	}

	for i, route := range c.Routes {
		c.Routes[i].Pattern = strings.TrimSpace(route.Pattern)
		c.Routes[i].Folder = strings.TrimSpace(route.Folder)
	}

	normalized := make([]string, 0, len(c.Scan.ContentExtensions))
	for _, ext := range c.Scan.ContentExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	c.Scan.ContentExtensions = normalized

	c.Scan.Strategy = strings.ToLower(strings.TrimSpace(c.Scan.Strategy))
	if c.Scan.Strategy == "" {
		c.Scan.Strategy = defaultScanStrategy
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	return nil
}

// EnsureDirectories creates the directories the watch daemon needs. The
// destination root is created up front so preflight checks and lazy
// per-folder creation both have a base to work from.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.WatchDir, c.Paths.DestRoot, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) != "" {
		if err := os.MkdirAll(filepath.Dir(c.Journal.Path), 0o755); err != nil {
			return fmt.Errorf("create journal directory: %w", err)
		}
	}
	return nil
}

// ContentScanExtensions returns the content-scan allow-list as a set.
func (c *Config) ContentScanExtensions() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Scan.ContentExtensions))
	for _, ext := range c.Scan.ContentExtensions {
		set[ext] = struct{}{}
	}
	return set
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
