// Package recommend implements guideline lookups and decision support on
// top of the dataset store: conductivity, acidity, nutrient and
// irrigation recommendations per plant and growth stage.
package recommend

import (
	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
)

// Dataset filenames consulted by the engine.
const (
	ConductivityFile = "ec_guidelines.json"
	AcidityFile      = "ph_guidelines.json"
	NutrientFile     = "nutrients/nutrient_guidelines.json"
	IrrigationFile   = "irrigation_guidelines.json"
	IntervalFile     = "irrigation_intervals.json"
	CoefficientFile  = "crop_coefficients.json"
)

// Level classifies a sensor reading against a guideline range.
type Level string

// Reading classifications.
const (
	LevelLow     Level = "low"
	LevelOptimal Level = "optimal"
	LevelHigh    Level = "high"
	LevelUnknown Level = "unknown"
)

// Adjustment is the corrective action suggested for a reading.
type Adjustment string

// Suggested corrective actions.
const (
	AdjustIncrease Adjustment = "increase"
	AdjustDecrease Adjustment = "decrease"
	AdjustNone     Adjustment = "none"
)

// Engine answers guideline lookups from the merged datasets. It holds no
// state of its own; caching lives in the dataset store.
type Engine struct {
	datasets ports.DatasetStore
}

// NewEngine creates an Engine over the given dataset store.
func NewEngine(datasets ports.DatasetStore) *Engine {
	return &Engine{datasets: datasets}
}

// guidelineRange resolves a (low, high) range for a plant and stage from
// a dataset shaped plant -> stage -> range. The "default" entry is the
// fallback when the stage has no dedicated range.
func (e *Engine) guidelineRange(file, plantType, stage string) (domain.Range, bool, error) {
	value, err := e.datasets.Load(file)
	if err != nil {
		return domain.Range{}, false, err
	}

	plant := domain.AsMap(domain.AsMap(value)[domain.NormalizeKey(plantType)])
	if stage != "" {
		if rng, ok := domain.ParseRange(plant[domain.NormalizeKey(stage)]); ok {
			return rng, true, nil
		}
	}
	if rng, ok := domain.ParseRange(plant["default"]); ok {
		return rng, true, nil
	}
	return domain.Range{}, false, nil
}

// classify places a reading inside a guideline range.
func classify(reading float64, rng domain.Range) Level {
	switch {
	case reading < rng.Low:
		return LevelLow
	case reading > rng.High:
		return LevelHigh
	default:
		return LevelOptimal
	}
}

// adjustmentFor maps a classification to the corrective action.
func adjustmentFor(level Level) Adjustment {
	switch level {
	case LevelLow:
		return AdjustIncrease
	case LevelHigh:
		return AdjustDecrease
	default:
		return AdjustNone
	}
}

// supportedPlants returns the sorted plant keys of a dataset.
func (e *Engine) supportedPlants(file string) ([]string, error) {
	value, err := e.datasets.Load(file)
	if err != nil {
		return nil, err
	}
	return domain.SortedKeys(domain.AsMap(value)), nil
}
