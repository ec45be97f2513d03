package domain

import (
	"slices"
	"time"
)

// ModuleVersionsCacheEntry is the persisted record of a repository version
// listing: a set of versions and the epoch millis at which it was written.
type ModuleVersionsCacheEntry struct {
	Versions  []string
	CreatedAt int64
}

// NewModuleVersionsCacheEntry creates an entry from a version set. Versions
// are sorted and deduplicated so that equal sets encode identically.
func NewModuleVersionsCacheEntry(versions []string, createdAt int64) ModuleVersionsCacheEntry {
	sorted := slices.Clone(versions)
	slices.Sort(sorted)
	return ModuleVersionsCacheEntry{
		Versions:  slices.Compact(sorted),
		CreatedAt: createdAt,
	}
}

// CachedModuleVersionList wraps a cache entry with the time at which it was
// read, so callers can judge staleness against their own TTL.
type CachedModuleVersionList struct {
	entry         ModuleVersionsCacheEntry
	referenceTime int64
}

// NewCachedModuleVersionList wraps entry as observed at referenceTime
// (epoch millis).
func NewCachedModuleVersionList(entry ModuleVersionsCacheEntry, referenceTime int64) CachedModuleVersionList {
	return CachedModuleVersionList{entry: entry, referenceTime: referenceTime}
}

// Versions returns a copy of the cached version set.
func (c CachedModuleVersionList) Versions() []string {
	return slices.Clone(c.entry.Versions)
}

// CreatedAt returns the epoch millis at which the entry was written.
func (c CachedModuleVersionList) CreatedAt() int64 {
	return c.entry.CreatedAt
}

// AgeMillis returns the reference time minus the creation time.
func (c CachedModuleVersionList) AgeMillis() int64 {
	return c.referenceTime - c.entry.CreatedAt
}

// Age returns AgeMillis as a duration.
func (c CachedModuleVersionList) Age() time.Duration {
	return time.Duration(c.AgeMillis()) * time.Millisecond
}

// IsStillValid reports whether the entry is younger than ttl.
func (c CachedModuleVersionList) IsStillValid(ttl time.Duration) bool {
	return c.Age() < ttl
}
