// Package progrock provides the Progrock implementation of the tracer.
package progrock

import (
	"context"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.verdant.dev/verdant/internal/core/ports"
)

// Recorder implements ports.Tracer using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

var _ ports.Tracer = (*Recorder)(nil)

// New creates a Recorder that renders progress to stderr. Nothing in the
// CLI drives a live tape display, so recordings go straight to a console
// writer the user actually sees.
func New() *Recorder {
	return NewRecorder(NewConsoleWriter(os.Stderr))
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins a new span with the given name.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
