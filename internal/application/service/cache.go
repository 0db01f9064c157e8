package service

import (
	"context"
	"time"
)

// Cache is a best-effort byte cache for projected read responses. Get returns
// (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
