// Package fs provides file system adapters for selecting, hashing, reading and writing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// SkipFunc reports whether path should be left out of a walk.
// Returning true for a directory prunes the whole subtree.
type SkipFunc func(path string, d fs.DirEntry) bool

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root, skipping VCS metadata and anything skip rejects.
// Paths are yielded as filepath.WalkDir produces them, prefixed with root.
// The first walk error ends the iteration and is yielded with an empty path.
func (w *Walker) WalkFiles(root string, skip SkipFunc) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && (isVCSDir(d.Name()) || (skip != nil && skip(path, d))) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
				return nil
			}
			if skip != nil && skip(path, d) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func isVCSDir(name string) bool {
	return name == ".git" || name == ".jj"
}
