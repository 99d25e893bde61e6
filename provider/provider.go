// Package provider defines the byte-store abstraction behind the cache
// backend of layerstore.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation). Internal transforms such as
// compression must be fully reversed before Get returns.
//
// Keys handed to a provider are resolved entry locations ("dir/name.json");
// Keys(prefix) enumeration against a resolved directory location ("dir/") is
// what makes directory-scoped listing work, so implementations must be able
// to report the keys they currently hold.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with optional TTL support. Must be safe
// for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/remote failures return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. ttl <= 0 means no expiry; providers
	// without per-entry TTLs may ignore it.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Del removes a key and reports whether it was present.
	Del(ctx context.Context, key string) (bool, error)

	// Keys returns the keys currently held that start with prefix.
	// Order is unspecified; callers sort when determinism matters.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
