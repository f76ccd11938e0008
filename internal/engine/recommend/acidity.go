package recommend

import "go.verdant.dev/verdant/internal/core/domain"

// AcidityRange returns the (min, max) pH guideline for a plant and
// stage, falling back to the plant's default range.
func (e *Engine) AcidityRange(plantType, stage string) (domain.Range, bool, error) {
	return e.guidelineRange(AcidityFile, plantType, stage)
}

// OptimalAcidity returns the midpoint pH target for a plant stage.
func (e *Engine) OptimalAcidity(plantType, stage string) (float64, bool, error) {
	rng, ok, err := e.AcidityRange(plantType, stage)
	if err != nil || !ok {
		return 0, false, err
	}
	return rng.Mid(), true, nil
}

// ClassifyAcidity places a pH reading against the guideline range.
func (e *Engine) ClassifyAcidity(reading float64, plantType, stage string) (Level, error) {
	rng, ok, err := e.AcidityRange(plantType, stage)
	if err != nil {
		return LevelUnknown, err
	}
	if !ok {
		return LevelUnknown, nil
	}
	return classify(reading, rng), nil
}

// AcidityAdjustment suggests the corrective action for a pH reading.
func (e *Engine) AcidityAdjustment(reading float64, plantType, stage string) (Adjustment, error) {
	level, err := e.ClassifyAcidity(reading, plantType, stage)
	if err != nil {
		return AdjustNone, err
	}
	return adjustmentFor(level), nil
}

// AcidityPlants returns the plant types with pH guidelines.
func (e *Engine) AcidityPlants() ([]string, error) {
	return e.supportedPlants(AcidityFile)
}
