package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSelector = (*Selector)(nil)

// Selector resolves roots and doublestar globs into candidate files.
type Selector struct {
	walker *Walker
}

// NewSelector creates a new Selector.
func NewSelector(walker *Walker) *Selector {
	return &Selector{walker: walker}
}

// Select walks every root of sel and returns the files whose root-relative path
// matches an include pattern and no exclude pattern.
// The result is deduplicated by resolved absolute path and sorted by key.
func (s *Selector) Select(ctx context.Context, sel domain.Selection) ([]domain.Candidate, error) {
	includes := sel.Includes
	if len(includes) == 0 {
		includes = domain.DefaultIncludes()
	}
	if err := validatePatterns(includes, sel.Excludes); err != nil {
		return nil, err
	}

	baseDir, err := filepath.Abs(sel.BaseDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve base directory"), "path", sel.BaseDir)
	}

	roots := sel.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}

	seen := make(map[string]struct{})
	var candidates []domain.Candidate

	for _, root := range roots {
		rootPath, err := resolveRoot(baseDir, root)
		if err != nil {
			return nil, err
		}

		var ignore gitignore.GitIgnore
		if sel.RespectGitignore {
			ignore = loadGitignore(rootPath)
		}

		skip := func(path string, d iofs.DirEntry) bool {
			if ignore == nil {
				return false
			}
			rel, relErr := filepath.Rel(rootPath, path)
			if relErr != nil {
				return false
			}
			match := ignore.Relative(filepath.ToSlash(rel), d.IsDir())
			return match != nil && match.Ignore()
		}

		for path, walkErr := range s.walker.WalkFiles(rootPath, skip) {
			if walkErr != nil {
				return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrWalkFailed.Error()), "root", rootPath)
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			rel, err := filepath.Rel(rootPath, path)
			if err != nil {
				continue
			}
			if !matches(filepath.ToSlash(rel), includes, sel.Excludes) {
				continue
			}

			resolved, ok := resolveFile(path)
			if !ok {
				continue
			}
			if _, dup := seen[resolved]; dup {
				continue
			}
			seen[resolved] = struct{}{}

			candidates = append(candidates, domain.Candidate{
				Path: resolved,
				Key:  cacheKey(baseDir, path),
			})
		}
	}

	slices.SortFunc(candidates, func(a, b domain.Candidate) int {
		return strings.Compare(a.Key, b.Key)
	})

	return candidates, nil
}

func validatePatterns(groups ...[]string) error {
	for _, patterns := range groups {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
			}
		}
	}
	return nil
}

func resolveRoot(baseDir, root string) (string, error) {
	path := root
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(domain.ErrRootNotFound, "root", path)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", path)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrRootNotDirectory, "root", path)
	}
	return filepath.Clean(path), nil
}

func matches(rel string, includes, excludes []string) bool {
	included := false
	for _, pattern := range includes {
		if doublestar.MatchUnvalidated(pattern, rel) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range excludes {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return false
		}
	}
	return true
}

// resolveFile returns the symlink-resolved absolute path of a regular file.
func resolveFile(path string) (string, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return resolved, true
}

// cacheKey is the slash path of path relative to baseDir, or the absolute
// slash path when path lies outside baseDir.
func cacheKey(baseDir, path string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func loadGitignore(root string) gitignore.GitIgnore {
	f, err := os.Open(filepath.Join(root, ".gitignore")) //nolint:gosec // Path is derived from configured root
	if err != nil {
		return nil
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return gitignore.New(f, root, nil)
}
