package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.verdant.dev/verdant/internal/core/ports/mocks"
	"go.verdant.dev/verdant/internal/engine/recommend"
)

func TestDailyIrrigationTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.IrrigationFile).Return(map[string]any{
		"tomato": map[string]any{
			"seedling": 150,
			"default":  "600",
		},
	}, nil).Times(3)

	engine := recommend.NewEngine(store)

	target, ok, err := engine.DailyIrrigationTarget("tomato", "seedling")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 150.0, target)

	target, ok, err = engine.DailyIrrigationTarget("tomato", "fruiting")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 600.0, target)

	_, ok, err = engine.DailyIrrigationTarget("cactus", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIrrigationInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.IntervalFile).Return(map[string]any{
		"basil": map[string]any{"default": 2},
	}, nil)

	engine := recommend.NewEngine(store)
	days, ok, err := engine.IrrigationInterval("basil", "")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 2.0, days)
}

func TestAdjustedIrrigationTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.IrrigationFile).Return(map[string]any{
		"tomato": map[string]any{"default": 500},
	}, nil)
	store.EXPECT().Load(recommend.CoefficientFile).Return(map[string]any{
		"tomato": map[string]any{"default": 0.8},
	}, nil)

	engine := recommend.NewEngine(store)
	target, ok, err := engine.AdjustedIrrigationTarget("tomato", "")
	require.NoError(t, err)
	require.True(t, ok)

	assert.InDelta(t, 400.0, target, 1e-9)
}

func TestAdjustedIrrigationTarget_NoCoefficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.IrrigationFile).Return(map[string]any{
		"tomato": map[string]any{"default": 500},
	}, nil)
	store.EXPECT().Load(recommend.CoefficientFile).Return(map[string]any{}, nil)

	engine := recommend.NewEngine(store)
	target, ok, err := engine.AdjustedIrrigationTarget("tomato", "")
	require.NoError(t, err)
	require.True(t, ok)

	// Without a coefficient the guideline volume stands as is.
	assert.Equal(t, 500.0, target)
}

func TestIrrigationDemand(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.CoefficientFile).Return(map[string]any{
		"tomato": map[string]any{
			"flowering": 1.15,
			"default":   0.8,
		},
	}, nil).Times(2)

	engine := recommend.NewEngine(store)

	demand, ok, err := engine.IrrigationDemand("tomato", "flowering", 5.0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 5.75, demand, 1e-9)

	demand, ok, err = engine.IrrigationDemand("tomato", "", 5.0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 4.0, demand, 1e-9)
}

func TestIrrigationDemand_NoCoefficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDatasetStore(ctrl)
	store.EXPECT().Load(recommend.CoefficientFile).Return(map[string]any{}, nil)

	engine := recommend.NewEngine(store)
	_, ok, err := engine.IrrigationDemand("cactus", "", 5.0)
	require.NoError(t, err)

	assert.False(t, ok)
}
