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
	"time"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
)

// PendingDir is the subdirectory holding one JSON file per pending
// threshold record.
const PendingDir = "pending_thresholds"

// Queue implements ports.PendingQueue with one JSON file per record.
type Queue struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

var _ ports.PendingQueue = (*Queue)(nil)

// NewQueue creates a pending queue under dir.
func NewQueue(dir string) *Queue {
	return &Queue{
		dir: filepath.Join(filepath.Clean(dir), PendingDir),
		now: time.Now,
	}
}

// Queue records proposed threshold values next to the previous ones and
// returns the persisted record.
func (q *Queue) Queue(plantID string, previous, proposed map[string]domain.Value) (*domain.ThresholdRecord, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	record := domain.ThresholdRecord{
		ID:        uuid.NewString(),
		PlantID:   plantID,
		Timestamp: q.now().UTC(),
		Changes:   make(map[string]domain.ThresholdChange, len(proposed)),
	}
	for key, value := range proposed {
		record.Changes[key] = domain.ThresholdChange{
			Previous: previous[key],
			Proposed: value,
			Status:   domain.ChangePending,
		}
	}

	if err := q.write(record); err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns every pending record, oldest first.
func (q *Queue) List() ([]domain.ThresholdRecord, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries, err := os.ReadDir(q.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read pending queue")
	}

	records := make([]domain.ThresholdRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		record, err := q.read(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

// Get retrieves one record by ID.
func (q *Queue) Get(recordID string) (*domain.ThresholdRecord, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.read(recordID)
}

// Resolve marks the listed keys approved or rejected and returns the
// updated record. Keys absent from decisions stay pending.
func (q *Queue) Resolve(recordID string, decisions map[string]bool) (*domain.ThresholdRecord, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	record, err := q.read(recordID)
	if err != nil {
		return nil, err
	}

	for key, approved := range decisions {
		change, ok := record.Changes[key]
		if !ok {
			continue
		}
		if approved {
			change.Status = domain.ChangeApproved
		} else {
			change.Status = domain.ChangeRejected
		}
		record.Changes[key] = change
	}

	if err := q.write(*record); err != nil {
		return nil, err
	}
	return record, nil
}

func (q *Queue) path(recordID string) string {
	return filepath.Join(q.dir, recordID+".json")
}

func (q *Queue) read(recordID string) (*domain.ThresholdRecord, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(q.path(recordID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrPendingNotFound, recordID), "record_id", recordID)
		}
		return nil, zerr.Wrap(err, "failed to read pending record")
	}

	var record domain.ThresholdRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrParse, err.Error()), "path", q.path(recordID))
	}
	return &record, nil
}

func (q *Queue) write(record domain.ThresholdRecord) error {
	if err := os.MkdirAll(q.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create pending queue directory")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal pending record")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(q.path(record.ID), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write pending record")
	}
	return nil
}
