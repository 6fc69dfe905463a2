package cache

import (
	"context"
	"delivery-sim-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed read-through cache for stored simulation results. Results
// are immutable once written, so a cache hit never needs invalidation;
// the TTL only bounds memory use.
type RedisSimulationCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSimulationCache(client *redis.Client, ttl time.Duration) *RedisSimulationCache {
	return &RedisSimulationCache{Client: client, TTL: ttl}
}

func cacheKey(id string) string { return "sim:" + id }

// Get returns a cached result and whether it was present. A broken payload
// is treated as a miss so the caller falls back to the store.
func (c *RedisSimulationCache) Get(ctx context.Context, id string) (*domain.SimulationResult, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("simulation cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("simulation cache: get %s: %w", id, err)
	}

	var result domain.SimulationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, nil
	}

	return &result, true, nil
}

// Put stores one result under its simulation id.
func (c *RedisSimulationCache) Put(ctx context.Context, result *domain.SimulationResult) error {
	if c.Client == nil {
		return errors.New("simulation cache: client is nil")
	}
	if result == nil || result.SimulationID == "" {
		return errors.New("simulation cache: result must have an id")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("simulation cache: marshal %s: %w", result.SimulationID, err)
	}

	if err := c.Client.Set(ctx, cacheKey(result.SimulationID), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("simulation cache: set %s: %w", result.SimulationID, err)
	}

	return nil
}
