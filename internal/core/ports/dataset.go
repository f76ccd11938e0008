package ports

import (
	"context"

	"go.verdant.dev/verdant/internal/core/domain"
)

// DatasetStore defines the interface for resolving, merging and caching
// dataset files across the configured search directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=dataset.go -destination=mocks/mock_dataset.go -package=mocks
type DatasetStore interface {
	// Load returns the dataset visible under the given relative filename,
	// deep-merged across every search directory with the overlay applied
	// last. A dataset absent from every directory is an empty mapping,
	// not an error. The returned value is a private copy.
	Load(name string) (domain.Value, error)

	// LoadContext runs Load off the calling goroutine and waits for it or
	// for ctx. The load itself is not cancelled.
	LoadContext(ctx context.Context, name string) (domain.Value, error)

	// LoadAll loads several datasets concurrently, keyed by filename.
	LoadAll(ctx context.Context, names ...string) (map[string]domain.Value, error)

	// File returns the absolute path of the first match for name in the
	// overlay-aware lookup order, or false when no directory has it.
	File(name string) (string, bool)

	// SearchPaths returns the merge-order directories (overlay excluded).
	SearchPaths() []string

	// LookupPaths returns the first-match-order directories with the
	// overlay, when configured, in front.
	LookupPaths() []string

	// Refresh drops every cache in dependency order. Callers that change
	// the environment configuration call this before the next lookup.
	Refresh()
}

// DatasetCatalog enumerates and documents the datasets available across
// the search directories.
type DatasetCatalog interface {
	// List returns the sorted relative filenames of every JSON/YAML
	// dataset found, excluding the catalog metadata file itself.
	List() ([]string, error)

	// Description returns the human-readable description for a dataset
	// name, or the empty string when undocumented.
	Description(name string) (string, error)

	// Info returns every dataset name mapped to its description.
	Info() (map[string]string, error)

	// ByCategory groups dataset names by their top-level path segment.
	ByCategory() (map[string][]string, error)

	// Search returns datasets whose name or description contains term,
	// case-insensitively.
	Search(term string) (map[string]string, error)

	// Refresh drops the catalog caches together with the store's.
	Refresh()
}
