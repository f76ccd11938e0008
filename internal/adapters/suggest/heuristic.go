package suggest

import (
	"context"
	"math"
	"strings"

	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
)

// weight is how far a heuristic suggestion moves from the current
// threshold toward the observed data.
const weight = 0.3

// Heuristic implements ports.Suggester without any model: each
// <metric>_min / <metric>_max threshold is nudged toward the observed
// minimum or maximum of that metric's recent readings. Thresholds with
// no matching readings are left unchanged.
type Heuristic struct{}

var _ ports.Suggester = (*Heuristic)(nil)

// NewHeuristic creates the offline suggester.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// SuggestThresholds proposes values for every threshold in the request.
func (h *Heuristic) SuggestThresholds(_ context.Context, req domain.SuggestionRequest) (map[string]float64, error) {
	suggested := make(map[string]float64, len(req.Thresholds))
	for key, current := range req.Thresholds {
		suggested[key] = round2(propose(key, current, req.Readings))
	}
	return suggested, nil
}

func propose(key string, current float64, readings map[string][]float64) float64 {
	metric, bound, ok := splitThresholdKey(key)
	if !ok {
		return current
	}
	samples := readings[metric]
	if len(samples) == 0 {
		return current
	}

	target := samples[0]
	for _, sample := range samples[1:] {
		if bound == "min" && sample < target {
			target = sample
		}
		if bound == "max" && sample > target {
			target = sample
		}
	}
	return current + weight*(target-current)
}

func splitThresholdKey(key string) (metric, bound string, ok bool) {
	switch {
	case strings.HasSuffix(key, "_min"):
		return strings.TrimSuffix(key, "_min"), "min", true
	case strings.HasSuffix(key, "_max"):
		return strings.TrimSuffix(key, "_max"), "max", true
	default:
		return "", "", false
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
