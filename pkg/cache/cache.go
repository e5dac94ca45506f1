// Package cache stores rendered artifacts (DOT, SVG) between CLI runs so
// repeated renders of an unchanged graph skip the Graphviz pass.
//
// Two implementations are provided: [FileCache] keeps JSON-wrapped entries
// with an optional TTL under a directory, and [NullCache] disables caching.
// Keys are content hashes produced by [Hash], so a changed input never hits
// a stale artifact.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the minimal byte-oriented cache used by the render path.
type Cache interface {
	// Get retrieves the value for key. The bool reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// Hash computes a SHA-256 content hash of data, returned as a 64-character
// hex string suitable as a cache key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
