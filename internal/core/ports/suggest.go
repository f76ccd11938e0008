package ports

import (
	"context"

	"go.verdant.dev/verdant/internal/core/domain"
)

// Suggester defines the interface for proposing revised sensor thresholds
// from the current profile state and recent readings.
//
//go:generate go run go.uber.org/mock/mockgen -source=suggest.go -destination=mocks/mock_suggest.go -package=mocks
type Suggester interface {
	// SuggestThresholds returns proposed threshold values keyed like the
	// request's thresholds.
	SuggestThresholds(ctx context.Context, req domain.SuggestionRequest) (map[string]float64, error)
}
