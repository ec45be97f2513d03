package versions_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depres/internal/adapters/clock"
	"go.trai.ch/depres/internal/adapters/versions"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInMemoryCache_WithoutDelegate(t *testing.T) {
	fake := clockwork.NewFakeClockAt(start)
	cache, err := versions.NewInMemoryCache(8, clock.NewLive(fake), nil)
	require.NoError(t, err)

	_, ok, err := cache.GetCachedModuleResolution("central", module)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.CacheModuleVersionList("central", module, []string{"1.1", "1.0", "1.1"}))
	fake.Advance(time.Second)

	cached, ok, err := cache.GetCachedModuleResolution("central", module)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"1.0", "1.1"}, cached.Versions())
	assert.Equal(t, int64(1000), cached.AgeMillis())
}

func TestInMemoryCache_WritesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockModuleVersionsCache(ctrl)
	delegate.EXPECT().CacheModuleVersionList("central", module, []string{"1.0"}).Return(nil)

	cache, err := versions.NewInMemoryCache(8, clock.New(clockwork.NewFakeClockAt(start)), delegate)
	require.NoError(t, err)

	require.NoError(t, cache.CacheModuleVersionList("central", module, []string{"1.0"}))

	// Served from memory: the delegate sees no read.
	cached, ok, err := cache.GetCachedModuleResolution("central", module)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"1.0"}, cached.Versions())
}

func TestInMemoryCache_FallsBackToDelegateOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockModuleVersionsCache(ctrl)
	stored := domain.NewCachedModuleVersionList(
		domain.NewModuleVersionsCacheEntry([]string{"2.0"}, start.UnixMilli()),
		start.UnixMilli(),
	)
	delegate.EXPECT().GetCachedModuleResolution("central", module).Return(stored, true, nil).Times(1)

	cache, err := versions.NewInMemoryCache(8, clock.New(clockwork.NewFakeClockAt(start)), delegate)
	require.NoError(t, err)

	for range 3 {
		cached, ok, err := cache.GetCachedModuleResolution("central", module)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []string{"2.0"}, cached.Versions())
	}
	assert.Equal(t, 1, cache.Len())
}

func TestInMemoryCache_DelegateWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockModuleVersionsCache(ctrl)
	delegate.EXPECT().CacheModuleVersionList("central", module, gomock.Any()).Return(errors.New("disk full"))
	delegate.EXPECT().GetCachedModuleResolution("central", module).Return(domain.CachedModuleVersionList{}, false, nil)

	cache, err := versions.NewInMemoryCache(8, clock.New(clockwork.NewFakeClockAt(start)), delegate)
	require.NoError(t, err)

	require.Error(t, cache.CacheModuleVersionList("central", module, []string{"1.0"}))

	_, ok, err := cache.GetCachedModuleResolution("central", module)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryCache_InvalidSize(t *testing.T) {
	_, err := versions.NewInMemoryCache(0, clock.New(clockwork.NewFakeClockAt(start)), nil)
	assert.Error(t, err)
}
