package cache

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/reform/internal/adapters/fs"
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store loads and saves fingerprint caches as properties files.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads the cache at path. A missing or empty file yields an empty cache.
func (s *Store) Load(path string) (ports.FingerprintCache, error) {
	//nolint:gosec // Path is derived from the project configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return NewTable(nil), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	entries, skipped := Decode(data)
	if skipped > 0 {
		s.logger.Warn("ignored malformed cache lines", "path", path, "count", skipped)
	}

	return NewTable(entries), nil
}

// Save writes every entry of c to path, creating the parent directory as needed.
func (s *Store) Save(path string, c ports.FingerprintCache) error {
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", path)
	}

	if err := fs.WriteFileAtomic(path, Encode(c.Snapshot()), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	s.logger.Debug("saved fingerprint cache", "path", path, "entries", c.Len())
	return nil
}
