// Package config loads and validates facetgen configuration.
//
// Configuration hierarchy:
//  1. Hardcoded defaults (NewConfig)
//  2. Project config (.facetgen.yaml in the project root)
//  3. Environment variables (FACETGEN_*)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "github.com/lodgekit/facetgen/internal/errors"
)

// ConfigFileName is the project configuration file name.
const ConfigFileName = ".facetgen.yaml"

// Config represents the complete facetgen configuration.
type Config struct {
	Version  int             `yaml:"version" json:"version"`
	Content  ContentConfig   `yaml:"content" json:"content"`
	Catalogs []CatalogConfig `yaml:"catalogs" json:"catalogs"`
	Output   OutputConfig    `yaml:"output" json:"output"`
	Build    BuildConfig     `yaml:"build" json:"build"`
}

// ContentConfig configures where item records are read from.
type ContentConfig struct {
	// Dir is the content directory, relative to the project root.
	Dir string `yaml:"dir" json:"dir"`
}

// CatalogConfig describes one independently generated catalog.
// Each catalog selects items by membership tag and owns a URL prefix.
type CatalogConfig struct {
	// Name is the catalog identifier, used for the output subdirectory.
	Name string `yaml:"name" json:"name"`

	// Tag selects items belonging to this catalog (e.g. "property").
	Tag string `yaml:"tag" json:"tag"`

	// BaseURL is the URL prefix facet pages are served under.
	BaseURL string `yaml:"base_url" json:"base_url"`
}

// OutputConfig configures artifact materialization.
type OutputConfig struct {
	// Dir is the directory generated artifacts are written to.
	Dir string `yaml:"dir" json:"dir"`

	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty" json:"pretty"`
}

// BuildConfig configures build execution.
type BuildConfig struct {
	// Workers is the number of catalogs generated concurrently (0 = NumCPU).
	Workers int `yaml:"workers" json:"workers"`

	// WatchDebounce is the coalescing window for watch mode (e.g. "300ms").
	WatchDebounce string `yaml:"watch_debounce" json:"watch_debounce"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// NewConfig returns the hardcoded defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Content: ContentConfig{Dir: "content"},
		Output:  OutputConfig{Dir: "public", Pretty: false},
		Build: BuildConfig{
			Workers:       0,
			WatchDebounce: "300ms",
			LogLevel:      "info",
		},
	}
}

// Load reads the project configuration from root, applying defaults and
// environment overrides. A missing config file is not an error; defaults
// are returned so `facetgen init` can bootstrap a project.
func Load(root string) (*Config, error) {
	cfg := NewConfig()

	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, ferrors.Wrap(ferrors.ErrCodeConfigNotFound, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeConfigInvalid, err).
				WithDetail("path", path)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies FACETGEN_* environment variables on top of the
// loaded configuration. Highest priority in the hierarchy.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FACETGEN_CONTENT_DIR"); v != "" {
		c.Content.Dir = v
	}
	if v := os.Getenv("FACETGEN_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("FACETGEN_LOG_LEVEL"); v != "" {
		c.Build.LogLevel = v
	}
	if v := os.Getenv("FACETGEN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Build.Workers = n
		}
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Content.Dir == "" {
		return ferrors.New(ferrors.ErrCodeConfigInvalid, "content.dir must not be empty", nil)
	}
	if c.Output.Dir == "" {
		return ferrors.New(ferrors.ErrCodeConfigInvalid, "output.dir must not be empty", nil)
	}
	if c.Build.Workers < 0 {
		return ferrors.Newf(ferrors.ErrCodeConfigInvalid, "build.workers must be >= 0, got %d", c.Build.Workers)
	}
	if c.Build.WatchDebounce != "" {
		if _, err := time.ParseDuration(c.Build.WatchDebounce); err != nil {
			return ferrors.Newf(ferrors.ErrCodeConfigInvalid, "build.watch_debounce %q is not a duration", c.Build.WatchDebounce)
		}
	}

	seen := make(map[string]struct{}, len(c.Catalogs))
	for _, cat := range c.Catalogs {
		if cat.Name == "" {
			return ferrors.New(ferrors.ErrCodeInvalidCatalog, "catalog name must not be empty", nil)
		}
		if cat.Tag == "" {
			return ferrors.Newf(ferrors.ErrCodeInvalidCatalog, "catalog %q has no tag", cat.Name).
				WithSuggestion("set catalogs[].tag in " + ConfigFileName)
		}
		if _, dup := seen[cat.Name]; dup {
			return ferrors.Newf(ferrors.ErrCodeInvalidCatalog, "duplicate catalog name %q", cat.Name)
		}
		seen[cat.Name] = struct{}{}
	}
	return nil
}

// WorkerCount resolves the configured worker count, defaulting to NumCPU.
func (c *Config) WorkerCount() int {
	if c.Build.Workers > 0 {
		return c.Build.Workers
	}
	return runtime.NumCPU()
}

// WatchDebounceDuration resolves the watch debounce window.
func (c *Config) WatchDebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Build.WatchDebounce)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}

// Catalog returns the catalog with the given name.
func (c *Config) Catalog(name string) (CatalogConfig, error) {
	for _, cat := range c.Catalogs {
		if cat.Name == name {
			return cat, nil
		}
	}
	return CatalogConfig{}, ferrors.Newf(ferrors.ErrCodeInvalidCatalog, "unknown catalog %q", name)
}

// Save writes the configuration to root as YAML.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInternal, err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeConfigInvalid, fmt.Errorf("write %s: %w", path, err))
	}
	return nil
}
