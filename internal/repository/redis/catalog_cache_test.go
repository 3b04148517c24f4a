//go:build !integration

package redis

import (
	"context"
	"testing"
	"time"

	"vpnAdvisor/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	rows  []domain.VPNService
	calls int
}

func (s *countingSource) FindAll(ctx context.Context) ([]domain.VPNService, error) {
	s.calls++
	return s.rows, nil
}

func newCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCatalogCacheServesSnapshot(t *testing.T) {
	source := &countingSource{rows: []domain.VPNService{
		{Name: "Alpha VPN", Country: "Germany", Speed: 12.5, Price: 9.99},
		{Name: "Beta VPN", Country: "Panama", Speed: 44.0, Price: 3.49},
	}}
	cache := NewCatalogCache(newCacheClient(t), source, 5*time.Minute)
	ctx := context.Background()

	first, err := cache.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, source.calls)

	second, err := cache.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls, "second read must come from the snapshot")
}

func TestCatalogCacheInvalidate(t *testing.T) {
	source := &countingSource{rows: []domain.VPNService{
		{Name: "Alpha VPN"},
	}}
	cache := NewCatalogCache(newCacheClient(t), source, 5*time.Minute)
	ctx := context.Background()

	_, err := cache.FindAll(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx))

	_, err = cache.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls, "invalidation must force a source reload")
}

func TestCatalogCacheCorruptEntryRefreshes(t *testing.T) {
	client := newCacheClient(t)
	source := &countingSource{rows: []domain.VPNService{{Name: "Alpha VPN"}}}
	cache := NewCatalogCache(client, source, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, catalogKey, "not json", 0).Err())

	rows, err := cache.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, source.calls)
}
