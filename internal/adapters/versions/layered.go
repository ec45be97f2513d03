package versions

import (
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
)

// Layered is the cache stack used by a build: an LRU in front of the file
// store below cacheDir, optionally backed by a shared read-only file store.
type Layered struct {
	ports.ModuleVersionsCache
	memory *InMemoryCache
	files  *FileCache
}

var _ ports.ModuleVersionsStore = (*Layered)(nil)

// NewLayered assembles the cache stack. readOnlyDir may be empty.
func NewLayered(cacheDir, readOnlyDir string, clock ports.TimeProvider, locks *LockingManager) (*Layered, error) {
	files := NewFileCache(domain.ModuleVersionsCachePath(cacheDir), clock, locks)

	var persistent ports.ModuleVersionsCache = files
	if readOnlyDir != "" {
		shared := NewFileCache(domain.ModuleVersionsCachePath(readOnlyDir), clock, locks)
		persistent = NewTwoStageCache(shared, files)
	}

	memory, err := NewInMemoryCache(DefaultMemoryEntries, clock, persistent)
	if err != nil {
		return nil, err
	}
	return &Layered{
		ModuleVersionsCache: memory,
		memory:              memory,
		files:               files,
	}, nil
}

// Clear empties the memory layer and the writable file store.
func (l *Layered) Clear() error {
	l.memory.Purge()
	return l.files.Clear()
}
