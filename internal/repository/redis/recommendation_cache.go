package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brewjournal/domain"

	"github.com/redis/go-redis/v9"
)

// cacheTTL keeps stale recommendation sets short-lived even if an
// invalidation is missed.
const cacheTTL = 5 * time.Minute

type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{
		client: client,
	}
}

func cacheKey(productID uint64) string {
	// key format: "reco:product:{product_id}"
	return fmt.Sprintf("reco:product:%d", productID)
}

func (c *RecommendationCache) Get(ctx context.Context, productID uint64) (*domain.RecommendationSet, error) {
	val, err := c.client.Get(ctx, cacheKey(productID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var set domain.RecommendationSet
	if err := json.Unmarshal([]byte(val), &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return &set, nil
}

func (c *RecommendationCache) Set(ctx context.Context, productID uint64, set domain.RecommendationSet) error {
	jsonData, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(productID), jsonData, cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}

func (c *RecommendationCache) InvalidateProduct(ctx context.Context, productID uint64) error {
	if err := c.client.Del(ctx, cacheKey(productID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate recommendations: %w", err)
	}

	return nil
}
