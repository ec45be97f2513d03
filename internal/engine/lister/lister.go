// Package lister lists module versions through the module versions cache.
package lister

import (
	"context"
	"time"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Listing is the version set of one module in one repository.
type Listing struct {
	Versions []string
	// FromCache is true when the listing was served without asking the
	// repository.
	FromCache bool
	// Age is how old the cached listing was when served; zero for fresh
	// listings.
	Age time.Duration
}

// Policy decides when a cached listing is stale.
type Policy interface {
	MustRefreshVersionList(module domain.ModuleIdentifier, age time.Duration) bool
}

// Lister serves version listings from the cache and refreshes stale entries
// from the repository. Concurrent requests for the same key share one
// repository call.
type Lister struct {
	cache   ports.ModuleVersionsCache
	metrics ports.ResolutionMetrics
	logger  ports.Logger
	group   singleflight.Group
}

// New creates a Lister.
func New(cache ports.ModuleVersionsCache, metrics ports.ResolutionMetrics, logger ports.Logger) *Lister {
	return &Lister{cache: cache, metrics: metrics, logger: logger}
}

// ListVersions returns the versions of module in repo. With refresh set the
// cache is bypassed for reads but still written.
func (l *Lister) ListVersions(
	ctx context.Context,
	repo ports.Repository,
	module domain.ModuleIdentifier,
	policy Policy,
	refresh bool,
) (Listing, error) {
	repoID := repo.ID()
	key := repoID + "|" + module.String()
	if refresh {
		key += "|refresh"
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		if !refresh {
			cached, ok, err := l.cache.GetCachedModuleResolution(repoID, module)
			if err != nil {
				l.logger.Warn("reading cached versions failed", "repository", repoID, "module", module.String(), "error", err)
			}
			if ok {
				if !policy.MustRefreshVersionList(module, cached.Age()) {
					l.metrics.VersionListHit(repoID)
					return Listing{Versions: cached.Versions(), FromCache: true, Age: cached.Age()}, nil
				}
				l.metrics.VersionListExpired(repoID)
				l.logger.Debug("cached versions expired", "repository", repoID, "module", module.String(), "age", cached.Age())
			} else {
				l.metrics.VersionListMiss(repoID)
			}
		}

		versions, err := repo.ListVersions(ctx, module)
		if err != nil {
			err = zerr.Wrap(err, "listing versions failed")
			err = zerr.With(err, "repository", repoID)
			return nil, zerr.With(err, "module", module.String())
		}
		if err := l.cache.CacheModuleVersionList(repoID, module, versions); err != nil {
			l.logger.Warn("caching versions failed", "repository", repoID, "module", module.String(), "error", err)
		}
		return Listing{Versions: versions}, nil
	})
	if err != nil {
		return Listing{}, err
	}
	return v.(Listing), nil
}
