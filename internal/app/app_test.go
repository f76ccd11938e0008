package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.verdant.dev/verdant/internal/adapters/telemetry"
	"go.verdant.dev/verdant/internal/app"
	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports/mocks"
	"go.verdant.dev/verdant/internal/engine/recommend"
)

type fixture struct {
	app       *app.App
	log       *mocks.MockLogger
	datasets  *mocks.MockDatasetStore
	profiles  *mocks.MockProfileStore
	pending   *mocks.MockPendingQueue
	suggester *mocks.MockSuggester
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		log:       mocks.NewMockLogger(ctrl),
		datasets:  mocks.NewMockDatasetStore(ctrl),
		profiles:  mocks.NewMockProfileStore(ctrl),
		pending:   mocks.NewMockPendingQueue(ctrl),
		suggester: mocks.NewMockSuggester(ctrl),
	}
	f.log.EXPECT().Info(gomock.Any()).AnyTimes()

	f.app = app.New(
		f.log,
		f.datasets,
		mocks.NewMockDatasetCatalog(ctrl),
		recommend.NewEngine(f.datasets),
		f.profiles,
		f.pending,
		f.suggester,
		telemetry.NewNoOpTracer(),
	)
	return f
}

func TestShowDataset(t *testing.T) {
	f := newFixture(t)
	f.datasets.EXPECT().
		LoadContext(gomock.Any(), "ec_guidelines.json").
		Return(map[string]any{"tomato": map[string]any{}}, nil)

	value, err := f.app.ShowDataset(context.Background(), "ec_guidelines.json")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"tomato": map[string]any{}}, value)
}

func TestEvaluate_UsesStoredProfile(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Get("tomato_1").Return(&domain.Profile{
		PlantID:    "tomato_1",
		PlantType:  "tomato",
		Thresholds: map[string]float64{"moisture_min": 30, "moisture_max": 60},
	}, nil)

	advice, err := f.app.Evaluate(context.Background(), "tomato_1", map[string]float64{"moisture": 70})
	require.NoError(t, err)
	require.Len(t, advice, 1)

	assert.Equal(t, recommend.LevelHigh, advice[0].Level)
}

func TestEvaluate_ProfileMissing(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Get("nope").Return(nil, domain.ErrProfileNotFound)

	_, err := f.app.Evaluate(context.Background(), "nope", nil)
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestSuggestThresholds_QueuesOnlyChangedValues(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Get("tomato_1").Return(&domain.Profile{
		PlantID:    "tomato_1",
		PlantType:  "tomato",
		Thresholds: map[string]float64{"moisture_min": 30, "moisture_max": 60},
	}, nil)
	f.suggester.EXPECT().
		SuggestThresholds(gomock.Any(), gomock.Any()).
		Return(map[string]float64{
			"moisture_min": 35,  // changed
			"moisture_max": 60,  // unchanged, must not be queued
			"ec_min":       1.2, // new threshold
		}, nil)
	f.pending.EXPECT().
		Queue("tomato_1",
			map[string]domain.Value{"moisture_min": 30.0},
			map[string]domain.Value{"moisture_min": 35.0, "ec_min": 1.2},
		).
		Return(&domain.ThresholdRecord{ID: "r1", PlantID: "tomato_1", Changes: map[string]domain.ThresholdChange{
			"moisture_min": {Previous: 30.0, Proposed: 35.0, Status: domain.ChangePending},
			"ec_min":       {Proposed: 1.2, Status: domain.ChangePending},
		}}, nil)

	record, err := f.app.SuggestThresholds(context.Background(), "tomato_1", map[string][]float64{
		"moisture": {40, 55},
	})
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "r1", record.ID)
}

func TestSuggestThresholds_NoChanges(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Get("tomato_1").Return(&domain.Profile{
		PlantID:    "tomato_1",
		PlantType:  "tomato",
		Thresholds: map[string]float64{"moisture_min": 30},
	}, nil)
	f.suggester.EXPECT().
		SuggestThresholds(gomock.Any(), gomock.Any()).
		Return(map[string]float64{"moisture_min": 30}, nil)

	record, err := f.app.SuggestThresholds(context.Background(), "tomato_1", nil)
	require.NoError(t, err)

	assert.Nil(t, record)
}

func TestResolvePending_AppliesApprovedValues(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().
		Resolve("r1", map[string]bool{"moisture_min": true, "ec_min": false}).
		Return(&domain.ThresholdRecord{ID: "r1", PlantID: "tomato_1", Changes: map[string]domain.ThresholdChange{
			"moisture_min": {Previous: 30.0, Proposed: 35.0, Status: domain.ChangeApproved},
			"ec_min":       {Proposed: 1.2, Status: domain.ChangeRejected},
		}}, nil)
	f.profiles.EXPECT().
		UpdateThresholds("tomato_1", map[string]float64{"moisture_min": 35}).
		Return(&domain.Profile{PlantID: "tomato_1", PlantType: "tomato"}, nil)

	record, err := f.app.ResolvePending("r1", map[string]bool{"moisture_min": true, "ec_min": false})
	require.NoError(t, err)

	assert.Equal(t, domain.ChangeApproved, record.Changes["moisture_min"].Status)
}

func TestResolvePending_NothingApproved(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().
		Resolve("r1", map[string]bool{"ec_min": false}).
		Return(&domain.ThresholdRecord{ID: "r1", PlantID: "tomato_1", Changes: map[string]domain.ThresholdChange{
			"ec_min": {Proposed: 1.2, Status: domain.ChangeRejected},
		}}, nil)

	record, err := f.app.ResolvePending("r1", map[string]bool{"ec_min": false})
	require.NoError(t, err)

	assert.Equal(t, "r1", record.ID)
}
