package recommend

import "go.verdant.dev/verdant/internal/core/domain"

// NutrientTargets returns the guideline ppm levels per nutrient for a
// plant stage, with the plant's "optimal" entry as the stage fallback.
// Entries that are not finite positive numbers are dropped.
func (e *Engine) NutrientTargets(plantType, stage string) (map[string]float64, error) {
	value, err := e.datasets.Load(NutrientFile)
	if err != nil {
		return nil, err
	}

	stageValue := domain.StageValue(domain.AsMap(value), plantType, stage, "optimal")
	return domain.CleanFloatMap(domain.AsMap(stageValue)), nil
}

// NutrientDeficit returns, per nutrient, how far the current solution is
// below the guideline target. Nutrients at or above target are omitted.
func (e *Engine) NutrientDeficit(current map[string]float64, plantType, stage string) (map[string]float64, error) {
	targets, err := e.NutrientTargets(plantType, stage)
	if err != nil {
		return nil, err
	}

	deficit := make(map[string]float64)
	for nutrient, target := range targets {
		if gap := target - current[nutrient]; gap > 0 {
			deficit[nutrient] = gap
		}
	}
	return deficit, nil
}

// NutrientPlants returns the plant types with nutrient guidelines.
func (e *Engine) NutrientPlants() ([]string, error) {
	return e.supportedPlants(NutrientFile)
}
