package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/metrics"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

const defaultCatalogTTL = 5 * time.Minute

// CatalogCache is a read-through cache for the cross-vendor approved-item
// listing, backed by Redis.
// Key format: catalog:items:<category> ("all" when no category filter).
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
// A non-positive ttl falls back to the default.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached listing for the category, or a miss.
func (c *CatalogCache) Get(ctx context.Context, category string) ([]domain.Item, bool, error) {
	raw, err := c.client.Get(ctx, c.key(category)).Bytes()
	if err == redis.Nil {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}

	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return items, true, nil
}

// Set stores the listing for the category, expiring after the cache TTL.
func (c *CatalogCache) Set(ctx context.Context, category string, items []domain.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(category), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing. Called after any mutation that can
// change catalog visibility.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "catalog:items:*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("catalog cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("catalog cache invalidate: %w", err)
	}
	return nil
}

func (c *CatalogCache) key(category string) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("catalog:items:%s", category)
}
