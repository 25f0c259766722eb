package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints content with XXHash64.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the XXHash64 of data as 16 lowercase hex digits.
func (h *Hasher) Fingerprint(data []byte) domain.Fingerprint {
	return format(xxhash.Sum64(data))
}

// FingerprintFile streams the file at path through the same digest as Fingerprint.
func (h *Hasher) FingerprintFile(path string) (domain.Fingerprint, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return format(digest.Sum64()), nil
}

func format(sum uint64) domain.Fingerprint {
	return domain.Fingerprint(fmt.Sprintf("%016x", sum))
}
