package ports

import "go.trai.ch/reform/internal/core/domain"

// FingerprintCache maps cache keys to the last known post-transform fingerprint.
// Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type FingerprintCache interface {
	// Get returns the fingerprint recorded for key.
	Get(key string) (domain.Fingerprint, bool)
	// Set records fp for key, replacing any previous value.
	Set(key string, fp domain.Fingerprint)
	// Delete removes the entry for key, if any.
	Delete(key string)
	// Len returns the number of entries.
	Len() int
	// Snapshot returns a copy of all entries.
	Snapshot() map[string]domain.Fingerprint
}

// CacheStore loads and persists a FingerprintCache.
type CacheStore interface {
	// Load reads the cache at path. A missing file yields an empty cache and no error.
	Load(path string) (FingerprintCache, error)
	// Save writes every entry of cache to path, replacing the previous file atomically.
	Save(path string, cache FingerprintCache) error
}
