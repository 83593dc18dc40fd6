package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "api.js", cfg.Feed.Path)
	assert.Equal(t, ">= 2.0.0", cfg.Feed.SchemaConstraint)
	require.Len(t, cfg.Feed.NamespaceAliases, 2)
	assert.Equal(t, NamespaceAlias{From: "yfiles.system", To: "yfiles.lang"}, cfg.Feed.NamespaceAliases[0])
	assert.Equal(t, 4, cfg.Output.Workers)
	assert.True(t, cfg.Output.Clean)
	assert.Equal(t, "yfiles", cfg.Generator.RootNamespace)
	assert.Equal(t, ModeNormal, cfg.Correction.Mode)
	assert.False(t, cfg.Correction.StrictNumbers)
	assert.Contains(t, cfg.Generator.StandardImports, "org.w3c.dom.Element")
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigName)
	content := `
[feed]
path = "feeds/api-2.4.js"

[output]
dir = "out"
workers = 2
raw = true

[correction]
mode = "progressive"
strict_numbers = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "feeds/api-2.4.js", cfg.Feed.Path)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, 2, cfg.Output.Workers)
	assert.True(t, cfg.Output.Raw)
	assert.Equal(t, ModeProgressive, cfg.Correction.Mode)
	assert.True(t, cfg.Correction.StrictNumbers)
	// untouched keys keep their defaults
	assert.Equal(t, "yfiles", cfg.Generator.Module)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DECLGEN_OUTPUT_DIR", "env-out")
	t.Setenv("DECLGEN_CORRECTION_STRICT_NUMBERS", "true")

	cfg, err := LoadWithViper(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "env-out", cfg.Output.Dir)
	assert.True(t, cfg.Correction.StrictNumbers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg, err := LoadWithViper(NewViper())
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty feed", func(c *Config) { c.Feed.Path = "" }, "feed.path"},
		{"bad constraint", func(c *Config) { c.Feed.SchemaConstraint = "not a version" }, "schema_constraint"},
		{"empty constraint disables check", func(c *Config) { c.Feed.SchemaConstraint = "" }, ""},
		{"half alias", func(c *Config) { c.Feed.NamespaceAliases = []NamespaceAlias{{From: "a"}} }, "namespace_aliases[0]"},
		{"zero workers", func(c *Config) { c.Output.Workers = 0 }, "output.workers"},
		{"unknown mode", func(c *Config) { c.Correction.Mode = "aggressive" }, "correction.mode"},
		{"zero cache", func(c *Config) { c.Generator.CacheSize = 0 }, "cache_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFileWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()
	feed := filepath.Join(dir, "api.js")
	require.NoError(t, os.WriteFile(feed, []byte("{}"), 0644))

	var calls int32
	fw, err := NewFileWatcher(func(string) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}, feed)
	require.NoError(t, err)
	fw.SetDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(feed, []byte(`{"version":"2.0.0"}`), 0644))
	}
	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
