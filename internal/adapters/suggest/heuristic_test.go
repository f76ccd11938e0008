package suggest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.verdant.dev/verdant/internal/adapters/suggest"
	"go.verdant.dev/verdant/internal/core/domain"
)

func TestHeuristic_NudgesTowardReadings(t *testing.T) {
	suggester := suggest.NewHeuristic()

	suggested, err := suggester.SuggestThresholds(context.Background(), domain.SuggestionRequest{
		PlantID:   "tomato_1",
		PlantType: "tomato",
		Thresholds: map[string]float64{
			"moisture_min": 30,
			"moisture_max": 60,
		},
		Readings: map[string][]float64{
			"moisture": {40, 55, 48},
		},
	})
	require.NoError(t, err)

	// min moves toward the observed minimum, max toward the maximum.
	assert.InDelta(t, 33.0, suggested["moisture_min"], 1e-9)
	assert.InDelta(t, 58.5, suggested["moisture_max"], 1e-9)
}

func TestHeuristic_KeepsThresholdsWithoutReadings(t *testing.T) {
	suggester := suggest.NewHeuristic()

	suggested, err := suggester.SuggestThresholds(context.Background(), domain.SuggestionRequest{
		PlantID:    "tomato_1",
		PlantType:  "tomato",
		Thresholds: map[string]float64{"ec_min": 1.2, "brightness": 800},
		Readings:   map[string][]float64{"moisture": {40}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.2, suggested["ec_min"])
	// Keys without a _min/_max suffix pass through untouched.
	assert.Equal(t, 800.0, suggested["brightness"])
}
