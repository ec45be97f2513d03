// Package progrock records resolution progress on a progrock tape.
package progrock

import (
	"context"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
)

// Recorder implements ports.Telemetry. Each resolved configuration becomes
// one vertex, identified by the digest of its name.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	min atomic.Int64
}

var _ ports.Telemetry = (*Recorder)(nil)

// New creates a Recorder on an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w. Vertex logs below info are dropped.
func NewRecorder(w progrock.Writer) *Recorder {
	r := &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
	r.min.Store(int64(domain.LogLevelInfo))
	return r
}

// SetLevel changes the threshold for vertex logs, including on open vertices.
func (r *Recorder) SetLevel(level domain.LogLevel) {
	r.min.Store(int64(level))
}

// Record opens a vertex named name and attaches it to the returned context.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertex := &Vertex{
		rec: r.rec.Vertex(digest.FromString(name), name),
		min: &r.min,
	}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close closes the underlying writer when it supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
