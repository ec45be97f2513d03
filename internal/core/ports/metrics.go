package ports

import "time"

// ResolutionMetrics counts cache and conflict events during resolution.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type ResolutionMetrics interface {
	VersionListHit(repositoryID string)
	VersionListMiss(repositoryID string)
	VersionListExpired(repositoryID string)
	ConflictResolved(mode string)
	ObserveResolution(configuration string, d time.Duration)
}
