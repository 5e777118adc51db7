package rediscache

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const filterOptionsKey = "car-catalog:filter-options:v1"

// redisClient is the subset of *redis.Client the cache needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// LookupObserver is told about every cache lookup: "hit", "miss" or "error".
type LookupObserver interface {
	CacheLookup(result string)
}

type FilterOptionsCache struct {
	client   redisClient
	ttl      time.Duration
	observer LookupObserver
}

// NewFilterOptionsCache caches the filter options payload as one JSON value.
// observer may be nil.
func NewFilterOptionsCache(client redisClient, ttl time.Duration, observer LookupObserver) (*FilterOptionsCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}
	return &FilterOptionsCache{client: client, ttl: ttl, observer: observer}, nil
}

func (c *FilterOptionsCache) Get(ctx context.Context) (*domain.FilterOptions, bool, error) {
	val, err := c.client.Get(ctx, filterOptionsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe("miss")
		return nil, false, nil
	}
	if err != nil {
		c.observe("error")
		return nil, false, fmt.Errorf("failed to read filter options from redis: %w", err)
	}

	var options domain.FilterOptions
	if err := json.Unmarshal(val, &options); err != nil {
		// a stale or foreign payload is treated as absent and overwritten on the next Set
		contextkeys.LoggerFromContext(ctx).Warn("Discarding undecodable cached filter options", port.Fields{
			"component": "FilterOptionsCache",
			"error":     err.Error(),
		})
		c.observe("miss")
		return nil, false, nil
	}

	c.observe("hit")
	return &options, true, nil
}

func (c *FilterOptionsCache) Set(ctx context.Context, options *domain.FilterOptions) error {
	payload, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to encode filter options: %w", err)
	}
	if err := c.client.Set(ctx, filterOptionsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write filter options to redis: %w", err)
	}
	return nil
}

func (c *FilterOptionsCache) observe(result string) {
	if c.observer != nil {
		c.observer.CacheLookup(result)
	}
}
