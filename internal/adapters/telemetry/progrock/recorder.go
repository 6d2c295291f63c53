// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/tsprops/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry, rendering vertices through a Printer.
type Recorder struct {
	printer *Printer
	rec     *progrock.Recorder
}

// New creates a Recorder whose output is discarded until SetOutput is called.
func New() *Recorder {
	return NewRecorder(io.Discard)
}

// NewRecorder creates a Recorder printing progress to w.
func NewRecorder(w io.Writer) *Recorder {
	printer := NewPrinter(w)
	return &Recorder{
		printer: printer,
		rec:     progrock.NewRecorder(printer),
	}
}

// SetOutput directs rendered progress to w.
func (r *Recorder) SetOutput(w io.Writer) {
	r.printer.SetOutput(w)
}

// Record starts a vertex named after the unit of work. Vertices are keyed by
// the digest of their name, so recording the same name twice updates one vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close closes the printer. Lines are written as updates arrive, so there is
// nothing left to flush.
func (r *Recorder) Close() error {
	return r.printer.Close()
}

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the vertex output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
