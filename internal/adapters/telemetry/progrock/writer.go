package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// ConsoleWriter renders status updates as plain lines on an io.Writer.
// Span output streams through verbatim; each vertex gets one line on
// completion. Suited to non-interactive use where a live tape has no
// display to render on.
type ConsoleWriter struct {
	mu  sync.Mutex
	out io.Writer
}

var _ progrock.Writer = (*ConsoleWriter)(nil)

// NewConsoleWriter creates a ConsoleWriter targeting out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

// WriteStatus renders one status update.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, log := range update.Logs {
		if _, err := w.out.Write(log.Data); err != nil {
			return err
		}
	}
	for _, vertex := range update.Vertexes {
		// Vertexes are announced on creation and again on completion;
		// only the completed form is worth a line.
		if vertex.Completed == nil {
			continue
		}
		status := "done"
		if vertex.Error != nil {
			status = "error: " + vertex.GetError()
		}
		if _, err := fmt.Fprintf(w.out, "%s: %s\n", vertex.Name, status); err != nil {
			return err
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (w *ConsoleWriter) Close() error {
	return nil
}
