// Package telemetry provides tracer implementations that do not record
// anywhere. The Progrock recorder lives in the progrock subpackage.
package telemetry

import (
	"context"

	"go.verdant.dev/verdant/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

var _ ports.Tracer = (*NoOpTracer)(nil)

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// Close does nothing.
func (t *NoOpTracer) Close() error {
	return nil
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// Write does nothing and reports the input as written.
func (s *NoOpSpan) Write(p []byte) (int, error) {
	return len(p), nil
}

// End does nothing.
func (s *NoOpSpan) End(error) {}
