package progrock

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Printer)(nil)

// Printer is a progrock.Writer that renders vertex output and completion as
// plain text lines.
type Printer struct {
	mu    sync.Mutex
	out   io.Writer
	names map[string]string
	done  map[string]bool
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		out:   w,
		names: make(map[string]string),
		done:  make(map[string]bool),
	}
}

// SetOutput changes the destination of subsequent lines.
func (p *Printer) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
}

// WriteStatus renders the vertices and logs of one update.
func (p *Printer) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.GetVertexes() {
		p.names[v.GetId()] = v.GetName()
	}

	for _, l := range update.GetLogs() {
		for _, line := range bytes.SplitAfter(l.GetData(), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			if _, err := fmt.Fprintf(p.out, "  %s | %s", p.names[l.GetVertex()], line); err != nil {
				return err
			}
		}
	}

	for _, v := range update.GetVertexes() {
		if v.GetCompleted() == nil || p.done[v.GetId()] {
			continue
		}
		p.done[v.GetId()] = true

		var err error
		switch {
		case v.Error != nil:
			_, err = fmt.Fprintf(p.out, "✗ %s: %s\n", v.GetName(), v.GetError())
		case v.GetCached():
			_, err = fmt.Fprintf(p.out, "✓ %s (cached)\n", v.GetName())
		default:
			_, err = fmt.Fprintf(p.out, "✓ %s\n", v.GetName())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Close does nothing; the destination is owned by the caller.
func (p *Printer) Close() error {
	return nil
}
