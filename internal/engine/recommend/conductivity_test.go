package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.verdant.dev/verdant/internal/core/ports/mocks"
	"go.verdant.dev/verdant/internal/engine/recommend"
)

func ecDataset() map[string]any {
	return map[string]any{
		"tomato": map[string]any{
			"seedling": []any{1.0, 1.5},
			"default":  []any{2.0, 3.5},
		},
		"basil": map[string]any{
			"default": "1.0-1.6",
		},
	}
}

func TestConductivityRange_StageSpecific(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil)

	engine := recommend.NewEngine(store)
	rng, ok, err := engine.ConductivityRange("Tomato", "Seedling")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 1.0, rng.Low)
	assert.Equal(t, 1.5, rng.High)
}

func TestConductivityRange_DefaultFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil)

	engine := recommend.NewEngine(store)
	rng, ok, err := engine.ConductivityRange("tomato", "flowering")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 2.0, rng.Low)
	assert.Equal(t, 3.5, rng.High)
}

func TestConductivityRange_StringRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil)

	engine := recommend.NewEngine(store)
	rng, ok, err := engine.ConductivityRange("basil", "")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 1.0, rng.Low)
	assert.Equal(t, 1.6, rng.High)
}

func TestConductivityRange_UnknownPlant(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil)

	engine := recommend.NewEngine(store)
	_, ok, err := engine.ConductivityRange("cactus", "")
	require.NoError(t, err)

	assert.False(t, ok)
}

func TestOptimalConductivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil)

	engine := recommend.NewEngine(store)
	mid, ok, err := engine.OptimalConductivity("tomato", "")
	require.NoError(t, err)
	require.True(t, ok)

	assert.InDelta(t, 2.75, mid, 1e-9)
}

func TestClassifyConductivity(t *testing.T) {
	tests := []struct {
		name     string
		reading  float64
		expected recommend.Level
	}{
		{"below range", 1.2, recommend.LevelLow},
		{"inside range", 2.4, recommend.LevelOptimal},
		{"at boundary", 3.5, recommend.LevelOptimal},
		{"above range", 4.8, recommend.LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockDatasetStore(ctrl)
			store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil)

			engine := recommend.NewEngine(store)
			level, err := engine.ClassifyConductivity(tt.reading, "tomato", "")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestClassifyConductivity_NoGuideline(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(map[string]any{}, nil)

	engine := recommend.NewEngine(store)
	level, err := engine.ClassifyConductivity(2.0, "cactus", "")
	require.NoError(t, err)

	assert.Equal(t, recommend.LevelUnknown, level)
}

func TestConductivityAdjustment(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil).Times(3)

	engine := recommend.NewEngine(store)

	adj, err := engine.ConductivityAdjustment(1.0, "tomato", "")
	require.NoError(t, err)
	assert.Equal(t, recommend.AdjustIncrease, adj)

	adj, err = engine.ConductivityAdjustment(4.0, "tomato", "")
	require.NoError(t, err)
	assert.Equal(t, recommend.AdjustDecrease, adj)

	adj, err = engine.ConductivityAdjustment(2.5, "tomato", "")
	require.NoError(t, err)
	assert.Equal(t, recommend.AdjustNone, adj)
}

func TestConductivityPlants(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.ConductivityFile).Return(ecDataset(), nil)

	engine := recommend.NewEngine(store)
	plants, err := engine.ConductivityPlants()
	require.NoError(t, err)

	assert.Equal(t, []string{"basil", "tomato"}, plants)
}
