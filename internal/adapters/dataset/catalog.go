package dataset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
)

var _ ports.DatasetCatalog = (*Catalog)(nil)

// CatalogFile is the dataset-of-datasets mapping filenames to
// human-readable descriptions. It is resolved through the merger like any
// other dataset, so overlays can document their own files.
const CatalogFile = "dataset_catalog.json"

// datasetExtensions are the file extensions the catalog considers
// datasets.
var datasetExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Catalog enumerates the datasets visible across the search directories.
// Derived listings are cached and dropped together with the store's
// caches on Refresh.
type Catalog struct {
	store *Store

	mu         sync.RWMutex
	list       []string
	info       map[string]string
	categories map[string][]string
}

// NewCatalog creates a Catalog over the given store and hooks its caches
// into the store's refresh cycle.
func NewCatalog(store *Store) *Catalog {
	c := &Catalog{store: store}
	store.OnRefresh(c.invalidate)
	return c
}

// List returns the sorted relative filenames of every JSON/YAML dataset
// found across the lookup directories, overlay included, excluding the
// catalog metadata file. Files under a legacy alias directory are also
// exposed under their bare filename.
func (c *Catalog) List() ([]string, error) {
	c.mu.RLock()
	cached := c.list
	c.mu.RUnlock()
	if cached != nil {
		return append([]string(nil), cached...), nil
	}

	names := make(map[string]bool)
	for _, dir := range c.store.LookupPaths() {
		if !isDir(dir) {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil || entry.IsDir() {
				return err
			}
			if !datasetExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			if filepath.Base(path) == CatalogFile {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			names[rel] = true
			for _, alias := range legacyAliases {
				prefix := filepath.ToSlash(alias) + "/"
				if strings.HasPrefix(rel, prefix) {
					names[strings.TrimPrefix(rel, prefix)] = true
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	c.mu.Lock()
	c.list = sorted
	c.mu.Unlock()
	return append([]string(nil), sorted...), nil
}

// Description returns the description for name from the merged catalog
// file, or the empty string when undocumented.
func (c *Catalog) Description(name string) (string, error) {
	descriptions, err := c.descriptions()
	if err != nil {
		return "", err
	}
	return descriptions[name], nil
}

// Info returns every dataset name mapped to its description, empty when
// undocumented.
func (c *Catalog) Info() (map[string]string, error) {
	c.mu.RLock()
	cached := c.info
	c.mu.RUnlock()
	if cached != nil {
		return copyInfo(cached), nil
	}

	names, err := c.List()
	if err != nil {
		return nil, err
	}
	descriptions, err := c.descriptions()
	if err != nil {
		return nil, err
	}

	info := make(map[string]string, len(names))
	for _, name := range names {
		info[name] = descriptions[name]
	}

	c.mu.Lock()
	c.info = info
	c.mu.Unlock()
	return copyInfo(info), nil
}

// ByCategory groups dataset names by their top-level path segment, with
// top-level files under the "root" sentinel.
func (c *Catalog) ByCategory() (map[string][]string, error) {
	c.mu.RLock()
	cached := c.categories
	c.mu.RUnlock()
	if cached != nil {
		return copyCategories(cached), nil
	}

	names, err := c.List()
	if err != nil {
		return nil, err
	}

	categories := make(map[string][]string)
	for _, name := range names {
		category := "root"
		if i := strings.Index(name, "/"); i > 0 {
			category = name[:i]
		}
		categories[category] = append(categories[category], name)
	}
	for _, paths := range categories {
		sort.Strings(paths)
	}

	c.mu.Lock()
	c.categories = categories
	c.mu.Unlock()
	return copyCategories(categories), nil
}

// Search returns datasets whose name or description contains term,
// case-insensitively. An empty term matches nothing.
func (c *Catalog) Search(term string) (map[string]string, error) {
	if term == "" {
		return map[string]string{}, nil
	}

	info, err := c.Info()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	matches := make(map[string]string)
	for name, desc := range info {
		if strings.Contains(strings.ToLower(name), term) || strings.Contains(strings.ToLower(desc), term) {
			matches[name] = desc
		}
	}
	return matches, nil
}

// Refresh drops the catalog caches together with the store's.
func (c *Catalog) Refresh() {
	c.store.Refresh()
}

// descriptions loads the merged catalog metadata file.
func (c *Catalog) descriptions() (map[string]string, error) {
	value, err := c.store.Load(CatalogFile)
	if err != nil {
		return nil, err
	}
	entries := domain.AsMap(value)
	descriptions := make(map[string]string, len(entries))
	for name, desc := range entries {
		if text, ok := desc.(string); ok {
			descriptions[name] = text
		}
	}
	return descriptions, nil
}

// invalidate runs inside the store's refresh cycle.
func (c *Catalog) invalidate() {
	c.mu.Lock()
	c.list = nil
	c.info = nil
	c.categories = nil
	c.mu.Unlock()
}

func copyInfo(info map[string]string) map[string]string {
	copied := make(map[string]string, len(info))
	for name, desc := range info {
		copied[name] = desc
	}
	return copied
}

func copyCategories(categories map[string][]string) map[string][]string {
	copied := make(map[string][]string, len(categories))
	for category, names := range categories {
		copied[category] = append([]string(nil), names...)
	}
	return copied
}
