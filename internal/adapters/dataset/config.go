// Package dataset implements dataset resolution: ordered directory search,
// JSON/YAML loading, overlay deep-merging and in-process caching.
package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Environment variables controlling the dataset search path.
const (
	// DataDirEnv overrides the base data directory.
	DataDirEnv = "VERDANT_DATA_DIR"
	// ExtraDirsEnv is a path-separator-delimited list of additional
	// dataset directories searched after the base directory.
	ExtraDirsEnv = "VERDANT_EXTRA_DATA_DIRS"
	// OverlayDirEnv names a directory whose files take precedence over
	// everything else.
	OverlayDirEnv = "VERDANT_OVERLAY_DIR"
)

// DefaultDataDir is the bundled dataset directory used when DataDirEnv is
// not set.
const DefaultDataDir = "data"

// Config holds the three directory inputs driving path resolution. Each is
// independently optional.
type Config struct {
	BaseDir    string
	ExtraDirs  []string
	OverlayDir string
}

// ConfigProvider returns the current configuration. The store consults it
// on every path computation so environment changes are picked up without
// an explicit reset.
type ConfigProvider func() Config

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	cfg := Config{BaseDir: DefaultDataDir}
	if base := os.Getenv(DataDirEnv); base != "" {
		cfg.BaseDir = base
	}
	if extras := os.Getenv(ExtraDirsEnv); extras != "" {
		for _, dir := range strings.Split(extras, string(filepath.ListSeparator)) {
			if dir != "" {
				cfg.ExtraDirs = append(cfg.ExtraDirs, dir)
			}
		}
	}
	cfg.OverlayDir = os.Getenv(OverlayDirEnv)
	return cfg
}

// Static returns a provider that always yields cfg. Useful for tests and
// embedded use where the environment is not the source of truth.
func Static(cfg Config) ConfigProvider {
	return func() Config { return cfg }
}

// fingerprint hashes the configuration by value so a changed environment
// invalidates the memoized search paths.
func (c Config) fingerprint() uint64 {
	digest := xxhash.New()
	_, _ = digest.WriteString(c.BaseDir)
	_, _ = digest.Write([]byte{0})
	for _, dir := range c.ExtraDirs {
		_, _ = digest.WriteString(dir)
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(c.OverlayDir)
	return digest.Sum64()
}
