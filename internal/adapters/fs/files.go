package fs

import (
	"os"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceFiles = (*Files)(nil)

// Files reads and rewrites candidate files on the local disk.
type Files struct{}

// NewFiles creates a new Files.
func NewFiles() *Files {
	return &Files{}
}

// Read returns the content of the file at path.
func (f *Files) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the selector
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// Write atomically replaces the file at path, keeping its permission bits.
func (f *Files) Write(path string, data []byte) error {
	perm := os.FileMode(domain.FilePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := WriteFileAtomic(path, data, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}
