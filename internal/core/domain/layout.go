package domain

import "path/filepath"

const (
	// DepresDirName is the name of the internal workspace directory.
	DepresDirName = ".depres"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ModuleVersionsCacheName is the name of the version listing cache.
	ModuleVersionsCacheName = "module-versions"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "depres.yaml"

	// MetricsFileName is the name of the metrics snapshot written after a run.
	MetricsFileName = "metrics.prom"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default root of all caches.
// It joins .depres and cache.
func DefaultCachePath() string {
	return filepath.Join(DepresDirName, CacheDirName)
}

// ModuleVersionsCachePath returns the directory of the version listing cache
// below cacheRoot.
func ModuleVersionsCachePath(cacheRoot string) string {
	return filepath.Join(cacheRoot, ModuleVersionsCacheName)
}

// DefaultMetricsPath returns the default path of the metrics snapshot.
// It joins .depres and metrics.prom.
func DefaultMetricsPath() string {
	return filepath.Join(DepresDirName, MetricsFileName)
}
