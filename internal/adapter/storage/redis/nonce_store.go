package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const noncePrefix = "nonce:"

// NonceStore backs HMAC replay protection: each signed request carries a
// nonce that must not have been seen inside the timestamp window.
type NonceStore struct {
	client *goredis.Client
}

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{client: client}
}

// CheckAndSet claims the nonce via SETNX, scoped per merchant so two
// merchants may legitimately pick the same value. True means the nonce
// is fresh; false means a replay.
func (s *NonceStore) CheckAndSet(ctx context.Context, merchantID, nonce string, ttl time.Duration) (bool, error) {
	fresh, err := s.client.SetNX(ctx, noncePrefix+merchantID+":"+nonce, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("nonce setnx: %w", err)
	}
	return fresh, nil
}
