package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-entry expiration. Implementations
// must treat failures as misses: callers use the cache for advisory data
// (provider model catalogs) and always have a fallback path.
type Store interface {
	// Get retrieves a value; the second return reports a hit
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key string, value string, expiration time.Duration)

	// Delete removes a key
	Delete(ctx context.Context, key string)
}
