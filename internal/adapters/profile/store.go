// Package profile implements JSON file persistence for plant profiles
// and the pending threshold review queue.
package profile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
)

// StateDirEnv selects the directory holding profiles and the pending
// queue. DefaultStateDir is used when the variable is unset.
const (
	StateDirEnv     = "VERDANT_STATE_DIR"
	DefaultStateDir = "state"
)

// ProfilesDir is the subdirectory holding one JSON file per plant.
const ProfilesDir = "profiles"

// StateDir resolves the state directory from the environment.
func StateDir() string {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir
	}
	return DefaultStateDir
}

// Store implements ports.ProfileStore with one JSON file per plant.
type Store struct {
	dir      string
	validate *validator.Validate
	mu       sync.RWMutex
	cache    map[string]domain.Profile
}

var _ ports.ProfileStore = (*Store)(nil)

// NewStore creates a profile store under dir/profiles.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:      filepath.Join(filepath.Clean(dir), ProfilesDir),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cache:    make(map[string]domain.Profile),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read profile directory")
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		//nolint:gosec // Path is cleaned and provided by trusted caller
		data, err := os.ReadFile(path)
		if err != nil {
			return zerr.Wrap(err, "failed to read profile file")
		}

		var p domain.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrParse, err.Error()), "path", path)
		}
		if p.PlantID == "" {
			p.PlantID = strings.TrimSuffix(entry.Name(), ".json")
		}
		s.cache[p.PlantID] = p
	}
	return nil
}

func (s *Store) save(p domain.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal profile")
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create profile directory")
	}

	path := filepath.Join(s.dir, p.PlantID+".json")
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write profile file")
	}
	return nil
}

// Get retrieves the profile for a plant ID.
func (s *Store) Get(plantID string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.cache[plantID]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrProfileNotFound, plantID), "plant_id", plantID)
	}
	return &p, nil
}

// Put validates and stores the profile, overwriting any previous one.
func (s *Store) Put(profile domain.Profile) error {
	if err := s.validate.Struct(profile); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidProfile, err.Error()), "plant_id", profile.PlantID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(profile); err != nil {
		return err
	}
	s.cache[profile.PlantID] = profile
	return nil
}

// List returns the sorted plant IDs with a stored profile.
func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.cache))
	for id := range s.cache {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// UpdateThresholds applies threshold values to a stored profile and
// returns the updated profile.
func (s *Store) UpdateThresholds(plantID string, changes map[string]float64) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.cache[plantID]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrProfileNotFound, plantID), "plant_id", plantID)
	}

	thresholds := make(map[string]float64, len(p.Thresholds)+len(changes))
	for key, value := range p.Thresholds {
		thresholds[key] = value
	}
	for key, value := range changes {
		thresholds[key] = value
	}
	p.Thresholds = thresholds

	if err := s.save(p); err != nil {
		return nil, err
	}
	s.cache[plantID] = p
	return &p, nil
}
