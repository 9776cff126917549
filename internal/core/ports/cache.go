package ports

import (
	"context"
	"time"
)

// Cache is the minimal key-value contract the shell asset cache is built on.
// Implementations should degrade gracefully (an error, not a crash) so that
// callers can fall back to a live origin read.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL (0 or negative means no expiration if supported).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
}
