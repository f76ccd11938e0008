package recommend

import (
	"sort"

	"go.verdant.dev/verdant/internal/core/domain"
)

// Advice is the evaluation of one sensor reading against the applicable
// guideline range.
type Advice struct {
	Metric     string
	Reading    float64
	Level      Level
	Adjustment Adjustment
	Range      *domain.Range
}

// Evaluate classifies each reading for a plant profile. The "ec" and
// "ph" metrics resolve against the guideline datasets; any other metric
// is checked against the profile's own <metric>_min / <metric>_max
// thresholds when both are set. Metrics without guidance come back as
// unknown so the caller can tell "fine" from "no data".
func (e *Engine) Evaluate(profile domain.Profile, readings map[string]float64) ([]Advice, error) {
	metrics := make([]string, 0, len(readings))
	for metric := range readings {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)

	advice := make([]Advice, 0, len(metrics))
	for _, metric := range metrics {
		reading := readings[metric]

		var (
			rng domain.Range
			ok  bool
			err error
		)
		switch metric {
		case "ec":
			rng, ok, err = e.ConductivityRange(profile.PlantType, profile.Stage)
		case "ph":
			rng, ok, err = e.AcidityRange(profile.PlantType, profile.Stage)
		default:
			rng, ok = profileRange(profile, metric)
		}
		if err != nil {
			return nil, err
		}

		entry := Advice{Metric: metric, Reading: reading, Level: LevelUnknown, Adjustment: AdjustNone}
		if ok {
			bounded := rng
			entry.Range = &bounded
			entry.Level = classify(reading, rng)
			entry.Adjustment = adjustmentFor(entry.Level)
		}
		advice = append(advice, entry)
	}
	return advice, nil
}

func profileRange(profile domain.Profile, metric string) (domain.Range, bool) {
	low, lowOK := profile.Thresholds[metric+"_min"]
	high, highOK := profile.Thresholds[metric+"_max"]
	if !lowOK || !highOK || low > high {
		return domain.Range{}, false
	}
	return domain.Range{Low: low, High: high}, true
}
