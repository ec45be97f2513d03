package progrock

import (
	"fmt"
	"sync/atomic"

	"github.com/vito/progrock"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
)

// Vertex is one resolved configuration on the tape.
type Vertex struct {
	rec *progrock.VertexRecorder
	min *atomic.Int64
}

var _ ports.Vertex = (*Vertex)(nil)

// Log writes a line to the vertex output when level passes the recorder threshold.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	if !v.logs(level) {
		return
	}
	_, _ = fmt.Fprintf(v.rec.Stdout(), "%-5s %s\n", level, msg)
}

func (v *Vertex) logs(level domain.LogLevel) bool {
	return level.Enabled(domain.LogLevel(v.min.Load()))
}

// Complete marks the configuration as resolved, or failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.rec.Done(err)
}

// Cached marks a configuration whose listings all came from the cache.
func (v *Vertex) Cached() {
	v.rec.Cached()
}
