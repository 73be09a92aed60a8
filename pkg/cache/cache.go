// Package cache provides the storage layer for PokeAPI responses and
// assembled Pokédex views.
//
// # Backends
//
//   - [FileCache]: JSON files under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: stores nothing (--no-cache)
//
// All backends implement [Cache]. Backends that can drop every entry they own
// also implement [Clearer].
//
// # Keys
//
// Keys are produced by a [Keyer] so that the HTTP layer and the view layer
// never collide. Use [NewScopedKeyer] to isolate keys per tenant or per API
// base URL.
//
// # Errors
//
// The sentinel errors [ErrNotFound] and [ErrNetwork] are shared by every
// network client in this module, together with [Retryable] and
// [RetryWithBackoff].
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	// TTLHTTP is how long raw PokeAPI responses are kept. PokeAPI data is
	// effectively static, so a day is conservative.
	TTLHTTP = 24 * time.Hour

	// TTLView is how long assembled views are kept.
	TTLView = time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiration.
//
// Get reports a miss with (nil, false, nil); an error is reserved for backend
// failures. A ttl of zero or less means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can remove all of their entries.
// It returns the number of entries removed.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Keyer generates cache keys.
type Keyer interface {
	// HTTPKey returns the key for a raw HTTP response, e.g. "http:pokeapi::pokemon/pikachu".
	HTTPKey(namespace, key string) string

	// ViewKey returns the key for an assembled view of a Pokémon.
	ViewKey(name string, opts ViewKeyOpts) string
}

// ViewKeyOpts holds the inputs that change the content of a cached view.
type ViewKeyOpts struct {
	BaseURL string `json:"base_url,omitempty"`
	Version int    `json:"version"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey implements [Keyer].
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// ViewKey implements [Keyer]. The name and options are hashed so that any
// option change yields a distinct key.
func (DefaultKeyer) ViewKey(name string, opts ViewKeyOpts) string {
	return hashKey("view", name, opts)
}
