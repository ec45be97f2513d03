package ports

import "go.trai.ch/depres/internal/core/domain"

// ModuleVersionsCache stores repository version listings keyed by repository
// id and module. It is a timestamped store only: judging whether an entry is
// stale belongs to the caller.
//
//go:generate go run go.uber.org/mock/mockgen -source=versions_cache.go -destination=mocks/mock_versions_cache.go -package=mocks
type ModuleVersionsCache interface {
	// CacheModuleVersionList replaces any entry for the key with versions,
	// stamped with the current time.
	CacheModuleVersionList(repositoryID string, module domain.ModuleIdentifier, versions []string) error

	// GetCachedModuleResolution returns the cached listing for the key.
	// It returns false, not an error, when nothing usable is cached.
	GetCachedModuleResolution(
		repositoryID string,
		module domain.ModuleIdentifier,
	) (domain.CachedModuleVersionList, bool, error)
}

// ModuleVersionsStore is the application's cache: a ModuleVersionsCache that
// can also be emptied.
type ModuleVersionsStore interface {
	ModuleVersionsCache
	// Clear removes every entry the store can write to.
	Clear() error
}
