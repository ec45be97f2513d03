package versions

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMemoryEntries bounds the in-memory layer.
const DefaultMemoryEntries = 4096

// InMemoryCache keeps recently used entries in an LRU in front of an optional
// delegate. Writes go through to the delegate; a memory miss consults the
// delegate and remembers what it returned.
type InMemoryCache struct {
	entries  *lru.Cache[cacheKey, domain.ModuleVersionsCacheEntry]
	delegate ports.ModuleVersionsCache
	clock    ports.TimeProvider
}

var _ ports.ModuleVersionsCache = (*InMemoryCache)(nil)

// NewInMemoryCache creates an InMemoryCache holding at most size entries.
// delegate may be nil for a cache that lives only as long as the process.
func NewInMemoryCache(size int, clock ports.TimeProvider, delegate ports.ModuleVersionsCache) (*InMemoryCache, error) {
	entries, err := lru.New[cacheKey, domain.ModuleVersionsCacheEntry](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create in-memory cache"), "size", size)
	}
	return &InMemoryCache{
		entries:  entries,
		delegate: delegate,
		clock:    clock,
	}, nil
}

// CacheModuleVersionList replaces the entry in memory and in the delegate.
func (c *InMemoryCache) CacheModuleVersionList(repositoryID string, module domain.ModuleIdentifier, versions []string) error {
	key := cacheKey{repositoryID: repositoryID, module: module}
	if c.delegate != nil {
		if err := c.delegate.CacheModuleVersionList(repositoryID, module, versions); err != nil {
			c.entries.Remove(key)
			return err
		}
	}
	c.entries.Add(key, domain.NewModuleVersionsCacheEntry(versions, c.clock.CurrentTime()))
	return nil
}

// GetCachedModuleResolution serves from memory, then from the delegate.
func (c *InMemoryCache) GetCachedModuleResolution(
	repositoryID string,
	module domain.ModuleIdentifier,
) (domain.CachedModuleVersionList, bool, error) {
	key := cacheKey{repositoryID: repositoryID, module: module}
	if entry, ok := c.entries.Get(key); ok {
		return domain.NewCachedModuleVersionList(entry, c.clock.CurrentTime()), true, nil
	}
	if c.delegate == nil {
		return domain.CachedModuleVersionList{}, false, nil
	}

	cached, ok, err := c.delegate.GetCachedModuleResolution(repositoryID, module)
	if err != nil || !ok {
		return cached, ok, err
	}
	c.entries.Add(key, domain.ModuleVersionsCacheEntry{
		Versions:  cached.Versions(),
		CreatedAt: cached.CreatedAt(),
	})
	return cached, true, nil
}

// Len returns the number of entries held in memory.
func (c *InMemoryCache) Len() int {
	return c.entries.Len()
}

// Purge drops every in-memory entry. The delegate is untouched.
func (c *InMemoryCache) Purge() {
	c.entries.Purge()
}
