package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get returns ("", nil) when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
	// MGet preserves input order; missing keys come back as nil values.
	MGet(ctx context.Context, keys ...string) ([]interface{}, error)
}
