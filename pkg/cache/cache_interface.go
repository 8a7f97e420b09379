package cache

import (
	"context"
	"time"
)

// Cache is the contract the repositories' cache-aside layer depends on.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found is false on a miss, in which case dest is untouched.
	Get(ctx context.Context, key string, dest any) (found bool, err error)

	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
