package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const submitGuardTTL = 10 * time.Minute

// SubmitGuard remembers idempotency keys of complaint submissions.
// Key format: submit:<idempotency_key>
type SubmitGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubmitGuard(client *redis.Client) *SubmitGuard {
	return &SubmitGuard{client: client, ttl: submitGuardTTL}
}

// Claim reports whether key is new. The check and the mark are one SETNX so
// two concurrent submissions cannot both win.
func (g *SubmitGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, submitKey(key), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submit guard: %w", err)
	}
	return ok, nil
}

// Release forgets key after a failed forward.
func (g *SubmitGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, submitKey(key)).Err()
}

func submitKey(key string) string {
	return fmt.Sprintf("submit:%s", key)
}
