package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis. Keys are
// namespaced "idempotency:<key>" and map directly to a transaction id
// string.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "idempotency:",
	}
}

// Lookup returns the transaction id mapped to key, or "" on a cache miss.
func (c *IdempotencyCache) Lookup(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis idempotency lookup: %w", err)
	}
	return val, nil
}

// Reserve performs an atomic SET-IF-ABSENT (SETNX) with TTL. Returns true
// iff this caller won the race to claim key.
func (c *IdempotencyCache) Reserve(ctx context.Context, key string, txID string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.prefix+key, txID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis idempotency reserve: %w", err)
	}
	return ok, nil
}

// Release deletes key from the cache. This is only ever called
// when admission aborts before the store insert, never on a completed
// transaction, so the TTL is the sole expiry mechanism afterwards.
func (c *IdempotencyCache) Release(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis idempotency release: %w", err)
	}
	return nil
}
