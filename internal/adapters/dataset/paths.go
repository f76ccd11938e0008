package dataset

import (
	"os"
	"path/filepath"
)

// localSubdir is the subdirectory of the base directory that is appended
// to the search path automatically when it exists, so user-dropped files
// can coexist with bundled datasets.
const localSubdir = "local/plants/temperature"

// legacyAliases are the fallback subpaths consulted, in order, when a
// dataset is not found directly under a search directory. Kept as an
// explicit table so the rules stay auditable independently of the merge
// algorithm.
var legacyAliases = []string{
	filepath.Join("plants", "temperature"),
}

// resolvedPaths is the memoized outcome of one path computation, tagged
// with the fingerprint of the configuration that produced it.
type resolvedPaths struct {
	fingerprint uint64

	// search is the merge-order list: base, the local subdirectory when
	// present, then the existing extra directories in configured order.
	// The overlay is deliberately absent; merging applies it last.
	search []string

	// lookup is the first-match-wins list: the overlay, when configured,
	// followed by search. The two orders must not be conflated.
	lookup []string
}

// resolvePaths derives the two directory orders from the configuration.
// Nonexistent extra directories are silently skipped; the base directory
// is always included whether or not it exists.
func resolvePaths(cfg Config) *resolvedPaths {
	search := []string{cfg.BaseDir}

	local := filepath.Join(cfg.BaseDir, filepath.FromSlash(localSubdir))
	if isDir(local) {
		search = append(search, local)
	}

	for _, dir := range cfg.ExtraDirs {
		if isDir(dir) {
			search = append(search, dir)
		}
	}

	lookup := make([]string, 0, len(search)+1)
	if cfg.OverlayDir != "" {
		lookup = append(lookup, cfg.OverlayDir)
	}
	lookup = append(lookup, search...)

	return &resolvedPaths{
		fingerprint: cfg.fingerprint(),
		search:      search,
		lookup:      lookup,
	}
}

// findIn returns the path of name under dir, falling back to the legacy
// alias subpaths, or false when the directory has no copy at all.
func findIn(dir, name string) (string, bool) {
	primary := filepath.Join(dir, filepath.FromSlash(name))
	if isFile(primary) {
		return primary, true
	}
	for _, alias := range legacyAliases {
		aliased := filepath.Join(dir, alias, filepath.FromSlash(name))
		if isFile(aliased) {
			return aliased, true
		}
	}
	return "", false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
