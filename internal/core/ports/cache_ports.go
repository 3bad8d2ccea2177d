package ports

import (
	"context"
	"time"
)

// CacheStore is the key-value store backing response caching and
// refresh-token tracking. Get reports a miss as (nil, false, nil).
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
