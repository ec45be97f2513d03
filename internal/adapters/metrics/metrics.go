// Package metrics exposes resolution counters through Prometheus.
package metrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// Collector implements ports.ResolutionMetrics on a private registry.
type Collector struct {
	registry          *prometheus.Registry
	versionListHits   *prometheus.CounterVec
	versionListMisses *prometheus.CounterVec
	versionListExpiry *prometheus.CounterVec
	conflicts         *prometheus.CounterVec
	resolution        *prometheus.HistogramVec
}

var _ ports.ResolutionMetrics = (*Collector)(nil)

// New creates a Collector with its counters registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		versionListHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depres_version_list_cache_hits_total",
				Help: "Version listings served from the module versions cache.",
			},
			[]string{"repository"},
		),
		versionListMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depres_version_list_cache_misses_total",
				Help: "Version listings fetched because nothing was cached.",
			},
			[]string{"repository"},
		),
		versionListExpiry: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depres_version_list_cache_expired_total",
				Help: "Version listings fetched because the cached entry was stale.",
			},
			[]string{"repository"},
		),
		conflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depres_conflicts_resolved_total",
				Help: "Modules requested at divergent versions, by conflict resolution mode.",
			},
			[]string{"mode"},
		),
		resolution: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "depres_resolution_duration_seconds",
				Help:    "Time taken to resolve one configuration.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"configuration"},
		),
	}
	c.registry.MustRegister(
		c.versionListHits,
		c.versionListMisses,
		c.versionListExpiry,
		c.conflicts,
		c.resolution,
	)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// VersionListHit counts a listing served from cache.
func (c *Collector) VersionListHit(repositoryID string) {
	c.versionListHits.WithLabelValues(repositoryID).Inc()
}

// VersionListMiss counts a listing fetched with no cache entry.
func (c *Collector) VersionListMiss(repositoryID string) {
	c.versionListMisses.WithLabelValues(repositoryID).Inc()
}

// VersionListExpired counts a listing fetched because its entry was stale.
func (c *Collector) VersionListExpired(repositoryID string) {
	c.versionListExpiry.WithLabelValues(repositoryID).Inc()
}

// ConflictResolved counts a module whose requests diverged.
func (c *Collector) ConflictResolved(mode string) {
	c.conflicts.WithLabelValues(mode).Inc()
}

// ObserveResolution records how long one configuration took.
func (c *Collector) ObserveResolution(configuration string, d time.Duration) {
	c.resolution.WithLabelValues(configuration).Observe(d.Seconds())
}

// WriteTextfile writes the current values in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create metrics directory"), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}
