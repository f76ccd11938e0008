package recommend

import "go.verdant.dev/verdant/internal/core/domain"

// ConductivityRange returns the (min, max) EC guideline in dS/m for a
// plant and stage, falling back to the plant's default range.
func (e *Engine) ConductivityRange(plantType, stage string) (domain.Range, bool, error) {
	return e.guidelineRange(ConductivityFile, plantType, stage)
}

// OptimalConductivity returns the midpoint EC target for a plant stage.
func (e *Engine) OptimalConductivity(plantType, stage string) (float64, bool, error) {
	rng, ok, err := e.ConductivityRange(plantType, stage)
	if err != nil || !ok {
		return 0, false, err
	}
	return rng.Mid(), true, nil
}

// ClassifyConductivity places an EC reading against the guideline range.
func (e *Engine) ClassifyConductivity(reading float64, plantType, stage string) (Level, error) {
	rng, ok, err := e.ConductivityRange(plantType, stage)
	if err != nil {
		return LevelUnknown, err
	}
	if !ok {
		return LevelUnknown, nil
	}
	return classify(reading, rng), nil
}

// ConductivityAdjustment suggests the corrective action for an EC
// reading.
func (e *Engine) ConductivityAdjustment(reading float64, plantType, stage string) (Adjustment, error) {
	level, err := e.ClassifyConductivity(reading, plantType, stage)
	if err != nil {
		return AdjustNone, err
	}
	return adjustmentFor(level), nil
}

// ConductivityPlants returns the plant types with EC guidelines.
func (e *Engine) ConductivityPlants() ([]string, error) {
	return e.supportedPlants(ConductivityFile)
}
