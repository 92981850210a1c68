package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/lodgekit/facetgen/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "content", cfg.Content.Dir)
	assert.Equal(t, "public", cfg.Output.Dir)
	assert.Empty(t, cfg.Catalogs)
}

func TestLoad_ReadsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: 1
content:
  dir: items
catalogs:
  - name: properties
    tag: property
    base_url: /properties
  - name: products
    tag: product
    base_url: /shop
output:
  dir: dist
  pretty: true
build:
  workers: 2
  watch_debounce: 500ms
  log_level: debug
`)

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "items", cfg.Content.Dir)
	require.Len(t, cfg.Catalogs, 2)
	assert.Equal(t, "property", cfg.Catalogs[0].Tag)
	assert.Equal(t, "/shop", cfg.Catalogs[1].BaseURL)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, 2, cfg.WorkerCount())
	assert.Equal(t, 500*time.Millisecond, cfg.WatchDebounceDuration())
	assert.Equal(t, "debug", cfg.Build.LogLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "catalogs: [unclosed")

	_, err := Load(dir)

	assert.ErrorIs(t, err, ferrors.New(ferrors.ErrCodeConfigInvalid, "", nil))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FACETGEN_OUTPUT_DIR", "build-out")
	t.Setenv("FACETGEN_LOG_LEVEL", "error")
	t.Setenv("FACETGEN_WORKERS", "4")

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "build-out", cfg.Output.Dir)
	assert.Equal(t, "error", cfg.Build.LogLevel)
	assert.Equal(t, 4, cfg.Build.Workers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty content dir",
			mutate:  func(c *Config) { c.Content.Dir = "" },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Build.Workers = -1 },
			wantErr: true,
		},
		{
			name:    "bad debounce",
			mutate:  func(c *Config) { c.Build.WatchDebounce = "soon" },
			wantErr: true,
		},
		{
			name: "catalog without tag",
			mutate: func(c *Config) {
				c.Catalogs = []CatalogConfig{{Name: "products"}}
			},
			wantErr: true,
		},
		{
			name: "duplicate catalog names",
			mutate: func(c *Config) {
				c.Catalogs = []CatalogConfig{
					{Name: "a", Tag: "x"},
					{Name: "a", Tag: "y"},
				}
			},
			wantErr: true,
		},
		{
			name: "two well-formed catalogs",
			mutate: func(c *Config) {
				c.Catalogs = []CatalogConfig{
					{Name: "a", Tag: "x", BaseURL: "/a"},
					{Name: "b", Tag: "y", BaseURL: "/b"},
				}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	cfg := NewConfig()
	cfg.Catalogs = []CatalogConfig{{Name: "properties", Tag: "property"}}

	cat, err := cfg.Catalog("properties")
	require.NoError(t, err)
	assert.Equal(t, "property", cat.Tag)

	_, err = cfg.Catalog("nope")
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Catalogs = []CatalogConfig{{Name: "properties", Tag: "property", BaseURL: "/p"}}

	require.NoError(t, cfg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Catalogs, loaded.Catalogs)
}

func TestWatchDebounceDuration_Fallback(t *testing.T) {
	cfg := NewConfig()
	cfg.Build.WatchDebounce = ""

	assert.Equal(t, 300*time.Millisecond, cfg.WatchDebounceDuration())
}
