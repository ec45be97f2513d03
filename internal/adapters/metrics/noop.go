package metrics

import (
	"time"

	"go.trai.ch/depres/internal/core/ports"
)

// NoOp discards every observation.
type NoOp struct{}

var _ ports.ResolutionMetrics = NoOp{}

// VersionListHit does nothing.
func (NoOp) VersionListHit(string) {}

// VersionListMiss does nothing.
func (NoOp) VersionListMiss(string) {}

// VersionListExpired does nothing.
func (NoOp) VersionListExpired(string) {}

// ConflictResolved does nothing.
func (NoOp) ConflictResolved(string) {}

// ObserveResolution does nothing.
func (NoOp) ObserveResolution(string, time.Duration) {}
