package redis

import (
	"context"
	"creditAdvisor/business/credit"
	"creditAdvisor/domain"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const predictionKeyPrefix = "credit:prediction:"

// PredictionCache keeps predicted categories in Redis for a fixed TTL.
type PredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ credit.PredictionCache = (*PredictionCache)(nil)

func NewPredictionCache(client *redis.Client, ttl time.Duration) *PredictionCache {
	return &PredictionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *PredictionCache) Get(ctx context.Context, key string) (domain.Category, bool, error) {
	val, err := c.client.Get(ctx, predictionKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get prediction from Redis: %w", err)
	}

	cat, err := domain.ParseCategory(val)
	if err != nil {
		// stale or foreign value, treat as a miss
		return "", false, nil
	}
	return cat, true, nil
}

func (c *PredictionCache) Set(ctx context.Context, key string, category domain.Category) error {
	if err := c.client.Set(ctx, predictionKeyPrefix+key, string(category), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store prediction in Redis: %w", err)
	}
	return nil
}
