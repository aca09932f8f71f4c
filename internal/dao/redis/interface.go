// Package redis provides the cache service used for token storage,
// presence tracking and read-path caching.
package redis

import (
	"context"
	"time"
)

// CacheService abstracts the synchronous cache operations so services can
// be tested without a live Redis.
type CacheService interface {
	// Set stores a value with a ttl.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns the value, or "" with a nil error for a missing key.
	Get(ctx context.Context, key string) (string, error)
	// GetOrError returns the value, or CodeNotFound for a missing key.
	GetOrError(ctx context.Context, key string) (string, error)

	// Delete removes a key if it exists.
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes every key matching a glob pattern.
	DeleteByPattern(ctx context.Context, pattern string) error
	// DeleteByPatterns removes keys for several patterns.
	DeleteByPatterns(ctx context.Context, patterns []string) error
}

// AsyncCacheService adds a fire-and-forget task queue for cache updates
// off the request path.
type AsyncCacheService interface {
	CacheService
	// SubmitTask queues an action; when the queue is full it runs inline.
	SubmitTask(action func())
}
