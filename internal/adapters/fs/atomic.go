package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

const tempFilePrefix = ".reform-tmp-"

// WriteFileAtomic writes data to a temp file next to filename, syncs it and
// renames it over filename, so readers never observe a partial file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // No-op once renamed

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return zerr.Wrap(err, "failed to chmod temp file")
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}
	return nil
}
