// Package app implements the application layer for verdant.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
	"go.verdant.dev/verdant/internal/engine/recommend"
)

// App coordinates the dataset layer, the recommendation engine and the
// profile stores behind the CLI operations.
type App struct {
	log       ports.Logger
	datasets  ports.DatasetStore
	catalog   ports.DatasetCatalog
	engine    *recommend.Engine
	profiles  ports.ProfileStore
	pending   ports.PendingQueue
	suggester ports.Suggester
	tracer    ports.Tracer
}

// New creates a new App instance.
func New(
	log ports.Logger,
	datasets ports.DatasetStore,
	catalog ports.DatasetCatalog,
	engine *recommend.Engine,
	profiles ports.ProfileStore,
	pending ports.PendingQueue,
	suggester ports.Suggester,
	tracer ports.Tracer,
) *App {
	return &App{
		log:       log,
		datasets:  datasets,
		catalog:   catalog,
		engine:    engine,
		profiles:  profiles,
		pending:   pending,
		suggester: suggester,
		tracer:    tracer,
	}
}

// ShowDataset loads and returns the merged contents of a dataset.
func (a *App) ShowDataset(ctx context.Context, name string) (domain.Value, error) {
	ctx, span := a.tracer.Start(ctx, "dataset "+name)
	value, err := a.datasets.LoadContext(ctx, name)
	span.End(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load dataset")
	}
	return value, nil
}

// Evaluate classifies the readings for a stored plant profile.
func (a *App) Evaluate(ctx context.Context, plantID string, readings map[string]float64) ([]recommend.Advice, error) {
	profile, err := a.profiles.Get(plantID)
	if err != nil {
		return nil, err
	}

	_, span := a.tracer.Start(ctx, "evaluate "+plantID)
	advice, err := a.engine.Evaluate(*profile, readings)
	span.End(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to evaluate readings")
	}
	return advice, nil
}

// SuggestThresholds asks the suggester for revised thresholds and queues
// every changed value for review. Nothing is applied to the profile
// until the record is resolved.
func (a *App) SuggestThresholds(ctx context.Context, plantID string, readings map[string][]float64) (*domain.ThresholdRecord, error) {
	profile, err := a.profiles.Get(plantID)
	if err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "suggest "+plantID)
	suggested, err := a.suggester.SuggestThresholds(ctx, domain.SuggestionRequest{
		PlantID:    profile.PlantID,
		PlantType:  profile.PlantType,
		Stage:      profile.Stage,
		Thresholds: profile.Thresholds,
		Readings:   readings,
	})
	span.End(err)
	if err != nil {
		return nil, zerr.Wrap(err, "threshold suggestion failed")
	}

	previous := make(map[string]domain.Value, len(profile.Thresholds))
	proposed := make(map[string]domain.Value, len(suggested))
	for key, value := range suggested {
		current, known := profile.Thresholds[key]
		if known && current == value {
			continue
		}
		if known {
			previous[key] = current
		}
		proposed[key] = value
	}
	if len(proposed) == 0 {
		a.log.Info("suggester proposed no threshold changes")
		return nil, nil
	}

	record, err := a.pending.Queue(plantID, previous, proposed)
	if err != nil {
		return nil, err
	}
	a.log.Info(fmt.Sprintf("queued %d threshold changes for %s", len(record.Changes), plantID))
	return record, nil
}

// ResolvePending records the review decisions and applies every approved
// value to the plant's profile.
func (a *App) ResolvePending(recordID string, decisions map[string]bool) (*domain.ThresholdRecord, error) {
	record, err := a.pending.Resolve(recordID, decisions)
	if err != nil {
		return nil, err
	}

	approved := make(map[string]float64)
	for key, change := range record.Changes {
		if change.Status != domain.ChangeApproved {
			continue
		}
		if value, ok := domain.Float(change.Proposed); ok {
			approved[key] = value
		}
	}
	if len(approved) == 0 {
		return record, nil
	}

	if _, err := a.profiles.UpdateThresholds(record.PlantID, approved); err != nil {
		return nil, zerr.Wrap(err, "failed to apply approved thresholds")
	}
	a.log.Info(fmt.Sprintf("applied %d approved thresholds to %s", len(approved), record.PlantID))
	return record, nil
}

// WatchDatasets refreshes the dataset caches whenever files change under
// the lookup directories. It blocks until ctx is cancelled.
func (a *App) WatchDatasets(ctx context.Context, watcher ports.Watcher) error {
	batches, err := watcher.Watch(ctx, a.datasets.LookupPaths())
	if err != nil {
		return zerr.Wrap(err, "failed to start dataset watch")
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			a.log.Error(zerr.Wrap(err, "failed to close watcher"))
		}
	}()

	a.log.Info("watching dataset directories")
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths, ok := <-batches:
			if !ok {
				return nil
			}
			_, span := a.tracer.Start(ctx, "dataset refresh")
			fmt.Fprintf(span, "%d paths changed\n", len(paths))
			a.datasets.Refresh()
			span.End(nil)
		}
	}
}
