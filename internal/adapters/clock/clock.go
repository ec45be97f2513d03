// Package clock provides the build-scoped time source used for cache expiry.
package clock

import (
	"github.com/jonboulle/clockwork"
	"go.trai.ch/depres/internal/core/ports"
)

// BuildCommencedTimeProvider reports the time at which the build started.
// Every cache entry written and every age computed during one invocation uses
// the same instant, so an entry written during this build always has age zero.
type BuildCommencedTimeProvider struct {
	commenced int64
}

var _ ports.TimeProvider = (*BuildCommencedTimeProvider)(nil)

// New captures the current time of c.
func New(c clockwork.Clock) *BuildCommencedTimeProvider {
	return &BuildCommencedTimeProvider{commenced: c.Now().UnixMilli()}
}

// CurrentTime returns the build start in epoch milliseconds.
func (p *BuildCommencedTimeProvider) CurrentTime() int64 {
	return p.commenced
}

// Live reads a clock on every call. It serves long-running processes where a
// single build instant would never let entries expire.
type Live struct {
	clock clockwork.Clock
}

var _ ports.TimeProvider = (*Live)(nil)

// NewLive creates a TimeProvider backed by c.
func NewLive(c clockwork.Clock) *Live {
	return &Live{clock: c}
}

// CurrentTime returns the clock's current time in epoch milliseconds.
func (l *Live) CurrentTime() int64 {
	return l.clock.Now().UnixMilli()
}
