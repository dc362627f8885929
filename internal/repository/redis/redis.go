package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"insureAdvisor/domain"

	"github.com/redis/go-redis/v9"
)

// ResultCache caches full recommendation results per (customer, topN).
// The customer and product tables are immutable for the process lifetime,
// so cached entries never need invalidation, only a TTL as a safety net
// across restarts with changed data files.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(customerID uint, topN int) string {
	return fmt.Sprintf("reco:cust=%d:n=%d", customerID, topN)
}

func (c *ResultCache) Get(ctx context.Context, customerID uint, topN int) (*domain.RecommendationResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("context error: %w", err)
	}

	data, err := c.client.Get(ctx, cacheKey(customerID, topN)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read result cache: %w", err)
	}

	var result domain.RecommendationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached result: %w", err)
	}

	return &result, true, nil
}

func (c *ResultCache) Set(ctx context.Context, result *domain.RecommendationResult, topN int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(result.CustomerID, topN), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write result cache: %w", err)
	}

	return nil
}
