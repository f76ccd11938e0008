package dataset

import (
	"context"
	"sync"

	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var _ ports.DatasetStore = (*Store)(nil)

// fileHit caches one first-match lookup, including the negative case.
type fileHit struct {
	path  string
	found bool
}

// Store resolves datasets across the configured search directories and
// memoizes every result until Refresh. All returned values are deep
// copies, so callers cannot corrupt cache entries.
type Store struct {
	config ConfigProvider
	log    ports.Logger

	mu       sync.RWMutex
	paths    *resolvedPaths
	datasets map[string]domain.Value
	files    map[string]fileHit
	hooks    []func()

	group singleflight.Group
}

// NewStore creates a Store reading its configuration through the given
// provider.
func NewStore(config ConfigProvider, log ports.Logger) *Store {
	return &Store{
		config:   config,
		log:      log,
		datasets: make(map[string]domain.Value),
		files:    make(map[string]fileHit),
	}
}

// resolved returns the current search paths, recomputing them when the
// configuration fingerprint no longer matches the memoized one. The
// dataset and file caches are deliberately left alone here; only Refresh
// drops those.
func (s *Store) resolved() *resolvedPaths {
	cfg := s.config()
	fp := cfg.fingerprint()

	s.mu.RLock()
	cached := s.paths
	s.mu.RUnlock()
	if cached != nil && cached.fingerprint == fp {
		return cached
	}

	fresh := resolvePaths(cfg)
	s.mu.Lock()
	s.paths = fresh
	s.mu.Unlock()
	return fresh
}

// SearchPaths returns the merge-order directories, overlay excluded.
func (s *Store) SearchPaths() []string {
	paths := s.resolved().search
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// LookupPaths returns the first-match-order directories with the overlay,
// when configured, in front.
func (s *Store) LookupPaths() []string {
	paths := s.resolved().lookup
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// Load returns the dataset under name deep-merged across every search
// directory, overlay last. A dataset absent everywhere is an empty
// mapping. Parse errors propagate; a corrupt dataset file is a packaging
// defect, not an expected absence.
func (s *Store) Load(name string) (domain.Value, error) {
	s.mu.RLock()
	cached, ok := s.datasets[name]
	s.mu.RUnlock()
	if ok {
		return domain.DeepCopy(cached), nil
	}

	value, err, _ := s.group.Do(name, func() (any, error) {
		merged, err := s.loadMerged(name)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.datasets[name] = merged
		s.mu.Unlock()
		return merged, nil
	})
	if err != nil {
		return nil, err
	}
	return domain.DeepCopy(value), nil
}

// loadMerged walks the search directories in order, merging every copy of
// name it finds, then applies the overlay with highest precedence.
func (s *Store) loadMerged(name string) (domain.Value, error) {
	cfg := s.config()
	var merged domain.Value = map[string]any{}

	for _, dir := range s.resolved().search {
		path, ok := findIn(dir, name)
		if !ok {
			continue
		}
		value, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		merged = domain.DeepMerge(merged, value)
	}

	if cfg.OverlayDir != "" {
		if path, ok := findIn(cfg.OverlayDir, name); ok {
			value, err := ReadFile(path)
			if err != nil {
				return nil, err
			}
			merged = domain.DeepMerge(merged, value)
		}
	}

	return merged, nil
}

// LoadContext waits for a background Load or for ctx, whichever finishes
// first. The load itself keeps running; there is nothing to cancel in a
// local file read.
func (s *Store) LoadContext(ctx context.Context, name string) (domain.Value, error) {
	type result struct {
		value domain.Value
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := s.Load(name)
		done <- result{value: value, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// LoadAll loads several datasets concurrently, keyed by filename.
func (s *Store) LoadAll(ctx context.Context, names ...string) (map[string]domain.Value, error) {
	out := make(map[string]domain.Value, len(names))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			value, err := s.LoadContext(ctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = value
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// File returns the absolute path of the first match for name in the
// overlay-aware lookup order. Results, including misses, are cached until
// Refresh.
func (s *Store) File(name string) (string, bool) {
	s.mu.RLock()
	hit, ok := s.files[name]
	s.mu.RUnlock()
	if ok {
		return hit.path, hit.found
	}

	var found fileHit
	for _, dir := range s.resolved().lookup {
		if path, ok := findIn(dir, name); ok {
			found = fileHit{path: path, found: true}
			break
		}
	}

	s.mu.Lock()
	s.files[name] = found
	s.mu.Unlock()
	return found.path, found.found
}

// OnRefresh registers a hook invoked by Refresh after the dataset caches
// are dropped and before the search paths are. The catalog uses this to
// keep its derived caches coherent with the store's.
func (s *Store) OnRefresh(fn func()) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

// Refresh drops every cache in dependency order: file-path lookups, then
// merged datasets, then derived caches via the registered hooks, then the
// memoized search paths.
func (s *Store) Refresh() {
	s.mu.Lock()
	s.files = make(map[string]fileHit)
	s.datasets = make(map[string]domain.Value)
	hooks := make([]func(), len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	s.mu.Lock()
	s.paths = nil
	s.mu.Unlock()

	if s.log != nil {
		s.log.Info("dataset caches cleared")
	}
}
