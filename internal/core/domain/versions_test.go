package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depres/internal/core/domain"
)

func TestNewModuleVersionsCacheEntry_SortsAndDeduplicates(t *testing.T) {
	entry := domain.NewModuleVersionsCacheEntry([]string{"2.0", "1.0", "2.0", "1.1"}, 10)

	assert.Equal(t, []string{"1.0", "1.1", "2.0"}, entry.Versions)
	assert.Equal(t, int64(10), entry.CreatedAt)
}

func TestCachedModuleVersionList_Age(t *testing.T) {
	entry := domain.NewModuleVersionsCacheEntry([]string{"1.0"}, 1_000)
	cached := domain.NewCachedModuleVersionList(entry, 61_000)

	assert.Equal(t, int64(60_000), cached.AgeMillis())
	assert.Equal(t, time.Minute, cached.Age())
	assert.Equal(t, int64(1_000), cached.CreatedAt())
}

func TestCachedModuleVersionList_IsStillValid(t *testing.T) {
	entry := domain.NewModuleVersionsCacheEntry([]string{"1.0"}, 0)

	tests := []struct {
		name      string
		reference int64
		ttl       time.Duration
		valid     bool
	}{
		{"younger than ttl", 59_999, time.Minute, true},
		{"exactly ttl", 60_000, time.Minute, false},
		{"older than ttl", 120_000, time.Minute, false},
		{"zero ttl never valid", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cached := domain.NewCachedModuleVersionList(entry, tt.reference)
			assert.Equal(t, tt.valid, cached.IsStillValid(tt.ttl))
		})
	}
}

func TestCachedModuleVersionList_VersionsAreCopied(t *testing.T) {
	cached := domain.NewCachedModuleVersionList(domain.NewModuleVersionsCacheEntry([]string{"1.0"}, 0), 0)

	versions := cached.Versions()
	versions[0] = "mutated"

	assert.Equal(t, []string{"1.0"}, cached.Versions())
}

func TestResolveDetails_LastWriteWins(t *testing.T) {
	details := domain.NewResolveDetails(domain.NewModuleVersionSelector("org", "a", "1.0"))

	assert.False(t, details.Updated())
	assert.Equal(t, domain.ReasonRequested, details.Reason())
	assert.Equal(t, "1.0", details.Target().Version)

	details.UseVersion("2.0", domain.ReasonForced)
	details.UseVersion("3.0", domain.ReasonSelectedByRule)

	assert.True(t, details.Updated())
	assert.Equal(t, "3.0", details.Target().Version)
	assert.Equal(t, domain.ReasonSelectedByRule, details.Reason())
	assert.Equal(t, "1.0", details.Requested().Version)
}
