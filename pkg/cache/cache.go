// Package cache stores layout results and rendered artifacts between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching
//
// # Keys
//
// A [Keyer] derives keys from content hashes, so equal inputs share entries
// no matter where they came from:
//
//	k := cache.NewDefaultKeyer()
//	key := k.LayoutKey(cache.Hash(graphJSON), cache.Hash(cfg.Fingerprint()))
//
// [ScopedKeyer] prefixes every key so that several tenants can share one
// Redis database.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values. Layouts are pure functions of their inputs,
// so entries only expire to bound disk and memory use.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and true, or false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NewNullCache returns a cache that stores nothing; every Get is a miss.
// It backs the --no-cache flag.
func NewNullCache() Cache { return nullCache{} }

type nullCache struct{}

func (nullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nullCache) Delete(context.Context, string) error { return nil }
func (nullCache) Close() error { return nil }
