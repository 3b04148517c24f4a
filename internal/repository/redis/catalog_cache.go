package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vpnAdvisor/business/recommender"
	"vpnAdvisor/domain"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:snapshot"

// CatalogCache decorates a CatalogRepository with a process-shared snapshot
// in redis. The cached snapshot is read-only; Invalidate drops it after an
// admin import.
type CatalogCache struct {
	client *redis.Client
	source recommender.CatalogRepository
	ttl    time.Duration
}

var _ recommender.CatalogRepository = (*CatalogCache)(nil)

func NewCatalogCache(client *redis.Client, source recommender.CatalogRepository, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (c *CatalogCache) FindAll(ctx context.Context) ([]domain.VPNService, error) {
	val, err := c.client.Get(ctx, catalogKey).Result()
	if err == nil {
		var services []domain.VPNService
		if err := json.Unmarshal([]byte(val), &services); err == nil {
			return services, nil
		}
		// corrupt entry: fall through and refresh from source
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	services, err := c.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store catalog snapshot: %w", err)
	}

	return services, nil
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}
