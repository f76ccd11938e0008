package ports

import "go.verdant.dev/verdant/internal/core/domain"

// ProfileStore defines the interface for persisting per-plant profiles.
//
//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=mocks/mock_profile.go -package=mocks
type ProfileStore interface {
	// Get retrieves the profile for a plant ID.
	Get(plantID string) (*domain.Profile, error)

	// Put validates and stores the profile, overwriting any previous one.
	Put(profile domain.Profile) error

	// List returns the sorted plant IDs with a stored profile.
	List() ([]string, error)

	// UpdateThresholds applies threshold values to a stored profile and
	// returns the updated profile.
	UpdateThresholds(plantID string, changes map[string]float64) (*domain.Profile, error)
}

// PendingQueue defines the interface for queueing threshold changes that
// require review before they are applied to a profile.
type PendingQueue interface {
	// Queue records proposed threshold values next to the previous ones
	// and returns the persisted record.
	Queue(plantID string, previous, proposed map[string]domain.Value) (*domain.ThresholdRecord, error)

	// List returns every pending record, oldest first.
	List() ([]domain.ThresholdRecord, error)

	// Get retrieves one record by ID.
	Get(recordID string) (*domain.ThresholdRecord, error)

	// Resolve marks the listed keys approved or rejected and returns the
	// updated record. Keys absent from decisions stay pending.
	Resolve(recordID string, decisions map[string]bool) (*domain.ThresholdRecord, error)
}
