package recommend

import "go.verdant.dev/verdant/internal/core/domain"

// stageNumber resolves a plant -> stage -> number dataset entry with the
// "default" fallback.
func (e *Engine) stageNumber(file, plantType, stage string) (float64, bool, error) {
	value, err := e.datasets.Load(file)
	if err != nil {
		return 0, false, err
	}
	num, ok := domain.Float(domain.StageValue(domain.AsMap(value), plantType, stage, "default"))
	return num, ok, nil
}

// DailyIrrigationTarget returns the guideline irrigation volume in
// ml/day for a plant stage.
func (e *Engine) DailyIrrigationTarget(plantType, stage string) (float64, bool, error) {
	return e.stageNumber(IrrigationFile, plantType, stage)
}

// IrrigationInterval returns the recommended days between irrigations
// for a plant stage.
func (e *Engine) IrrigationInterval(plantType, stage string) (float64, bool, error) {
	return e.stageNumber(IntervalFile, plantType, stage)
}

// CropCoefficient returns the Kc crop coefficient for a plant stage.
func (e *Engine) CropCoefficient(plantType, stage string) (float64, bool, error) {
	return e.stageNumber(CoefficientFile, plantType, stage)
}

// AdjustedIrrigationTarget scales the guideline daily volume by the
// crop coefficient for the stage.
func (e *Engine) AdjustedIrrigationTarget(plantType, stage string) (float64, bool, error) {
	target, ok, err := e.DailyIrrigationTarget(plantType, stage)
	if err != nil || !ok {
		return 0, false, err
	}
	kc, ok, err := e.CropCoefficient(plantType, stage)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return target, true, nil
	}
	return target * kc, true, nil
}

// IrrigationDemand estimates the daily crop water demand from a
// reference evapotranspiration reading: ETa = ET0 x Kc.
func (e *Engine) IrrigationDemand(plantType, stage string, et0 float64) (float64, bool, error) {
	kc, ok, err := e.CropCoefficient(plantType, stage)
	if err != nil || !ok {
		return 0, false, err
	}
	return et0 * kc, true, nil
}

// IrrigationPlants returns the plant types with irrigation guidelines.
func (e *Engine) IrrigationPlants() ([]string, error) {
	return e.supportedPlants(IrrigationFile)
}
