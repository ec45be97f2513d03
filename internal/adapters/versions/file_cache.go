// Package versions implements the module versions cache: a persistent file
// store, an in-memory layer and a two-stage composite.
package versions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileCache stores one file per (repository, module) pair below dir. Files
// are named by the xxhash of the encoded key and hold the key followed by the
// entry.
type FileCache struct {
	dir   string
	clock ports.TimeProvider
	locks *LockingManager
}

var _ ports.ModuleVersionsCache = (*FileCache)(nil)

// NewFileCache creates a FileCache rooted at dir. The directory is created on
// first write.
func NewFileCache(dir string, clock ports.TimeProvider, locks *LockingManager) *FileCache {
	return &FileCache{
		dir:   filepath.Clean(dir),
		clock: clock,
		locks: locks,
	}
}

// Dir returns the directory holding the cache files.
func (c *FileCache) Dir() string {
	return c.dir
}

// CacheModuleVersionList replaces the entry for the key.
func (c *FileCache) CacheModuleVersionList(repositoryID string, module domain.ModuleIdentifier, versions []string) error {
	key := cacheKey{repositoryID: repositoryID, module: module}
	entry := domain.NewModuleVersionsCacheEntry(versions, c.clock.CurrentTime())
	path := c.pathFor(key)

	return c.locks.WithLock(func() error {
		if err := atomicWriteFile(path, encodeRecord(key, entry)); err != nil {
			err = zerr.Wrap(err, domain.ErrCacheIO.Error())
			return zerr.With(err, "path", path)
		}
		return nil
	})
}

// GetCachedModuleResolution reads the entry for the key. Missing, truncated
// or foreign files are misses.
func (c *FileCache) GetCachedModuleResolution(
	repositoryID string,
	module domain.ModuleIdentifier,
) (domain.CachedModuleVersionList, bool, error) {
	key := cacheKey{repositoryID: repositoryID, module: module}
	path := c.pathFor(key)

	var data []byte
	err := c.locks.WithLock(func() error {
		var readErr error
		data, readErr = os.ReadFile(path) //nolint:gosec // path is derived from the cache directory
		return readErr
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CachedModuleVersionList{}, false, nil
		}
		err = zerr.Wrap(err, domain.ErrCacheIO.Error())
		return domain.CachedModuleVersionList{}, false, zerr.With(err, "path", path)
	}

	storedKey, entry, err := decodeRecord(data)
	if err != nil || storedKey != key {
		return domain.CachedModuleVersionList{}, false, nil
	}
	return domain.NewCachedModuleVersionList(entry, c.clock.CurrentTime()), true, nil
}

// Clear removes every cached listing.
func (c *FileCache) Clear() error {
	return c.locks.WithLock(func() error {
		if err := os.RemoveAll(c.dir); err != nil {
			err = zerr.Wrap(err, domain.ErrCacheIO.Error())
			return zerr.With(err, "path", c.dir)
		}
		return nil
	})
}

func (c *FileCache) pathFor(k cacheKey) string {
	return filepath.Join(c.dir, fmt.Sprintf("%016x.bin", xxhash.Sum64(encodeKey(k))))
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "entry-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
