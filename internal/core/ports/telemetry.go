package ports

import (
	"context"
	"io"
)

// Tracer is the entry point for recording units of work (a dataset scan,
// a recommendation run, a watch refresh).
type Tracer interface {
	// Start begins a new span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one recorded unit of work. Writes become the span's
// output stream.
type Span interface {
	io.Writer

	// End completes the span, recording err when non-nil.
	End(err error)
}
