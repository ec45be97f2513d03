package versions

import (
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
)

// TwoStageCache consults a writable cache first and a shared read-only cache
// second. Writes never reach the read-only stage.
type TwoStageCache struct {
	readOnly ports.ModuleVersionsCache
	writable ports.ModuleVersionsCache
}

var _ ports.ModuleVersionsCache = (*TwoStageCache)(nil)

// NewTwoStageCache combines a read-only and a writable stage.
func NewTwoStageCache(readOnly, writable ports.ModuleVersionsCache) *TwoStageCache {
	return &TwoStageCache{readOnly: readOnly, writable: writable}
}

// CacheModuleVersionList writes to the writable stage.
func (c *TwoStageCache) CacheModuleVersionList(repositoryID string, module domain.ModuleIdentifier, versions []string) error {
	return c.writable.CacheModuleVersionList(repositoryID, module, versions)
}

// GetCachedModuleResolution prefers the writable stage.
func (c *TwoStageCache) GetCachedModuleResolution(
	repositoryID string,
	module domain.ModuleIdentifier,
) (domain.CachedModuleVersionList, bool, error) {
	cached, ok, err := c.writable.GetCachedModuleResolution(repositoryID, module)
	if err != nil || ok {
		return cached, ok, err
	}
	return c.readOnly.GetCachedModuleResolution(repositoryID, module)
}
