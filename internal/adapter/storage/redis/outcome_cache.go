package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// OutcomeCache implements ports.OutcomeCache using Redis.
type OutcomeCache struct {
	client *goredis.Client
	prefix string
}

// NewOutcomeCache creates a new Redis-backed apply-outcome cache.
func NewOutcomeCache(client *goredis.Client) *OutcomeCache {
	return &OutcomeCache{
		client: client,
		prefix: "outcome:",
	}
}

// Get retrieves a cached apply outcome by transaction id.
// Returns nil, nil if the key does not exist.
func (c *OutcomeCache) Get(ctx context.Context, txID string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+txID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis outcome get: %w", err)
	}
	return val, nil
}

// Set stores an apply outcome with TTL.
func (c *OutcomeCache) Set(ctx context.Context, txID string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+txID, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis outcome set: %w", err)
	}
	return nil
}
