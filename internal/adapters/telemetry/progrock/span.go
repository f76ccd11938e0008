package progrock

import (
	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
}

// Write sends output to the span's stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// End completes the span, recording err when non-nil.
func (s *Span) End(err error) {
	s.vertex.Done(err)
}
