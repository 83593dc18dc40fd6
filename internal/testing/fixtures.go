// Package testing holds fixtures shared by the declgen test suites.
package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teranos/declgen/config"
)

// WriteFeed writes content as api.js into a fresh temporary directory and
// returns its path. The directory is removed by t.Cleanup.
func WriteFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.js")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write feed: %v", err)
	}
	return path
}

// DefaultConfig returns the built-in defaults plus DECLGEN_* environment
// overrides, without reading any config file.
func DefaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadWithViper(config.NewViper())
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	return cfg
}

// FeedConfig returns the defaults pointed at a feed holding content, with
// the output directory next to it.
func FeedConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	cfg := DefaultConfig(t)
	cfg.Feed.Path = WriteFeed(t, content)
	cfg.Output.Dir = filepath.Join(filepath.Dir(cfg.Feed.Path), "out")
	return cfg
}
