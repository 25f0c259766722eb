package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reform/internal/adapters/fs"
	"go.trai.ch/reform/internal/core/domain"
)

func keys(candidates []domain.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Key)
	}
	return out
}

func TestSelector_Select_IncludesAndExcludes(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"src/app.js":        "app",
		"src/lib/util.js":   "util",
		"src/lib/util.ts":   "ts",
		"src/vendor/x.js":   "vendor",
		"src/dist/a.min.js": "min",
	})

	selector := fs.NewSelector(fs.NewWalker())
	candidates, err := selector.Select(context.Background(), domain.Selection{
		BaseDir:  tmpDir,
		Roots:    []string{"src"},
		Includes: []string{"**/*.js"},
		Excludes: []string{"vendor/**", "**/*.min.js"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app.js", "src/lib/util.js"}, keys(candidates))
	for _, c := range candidates {
		assert.True(t, filepath.IsAbs(c.Path))
	}
}

func TestSelector_Select_DefaultIncludes(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"a.js":  "a",
		"b.css": "b",
	})

	candidates, err := fs.NewSelector(fs.NewWalker()).Select(context.Background(), domain.Selection{
		BaseDir: tmpDir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js"}, keys(candidates))
}

func TestSelector_Select_RootQualifiedKeys(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"src/a.js":  "src",
		"test/a.js": "test",
	})

	candidates, err := fs.NewSelector(fs.NewWalker()).Select(context.Background(), domain.Selection{
		BaseDir:  tmpDir,
		Roots:    []string{"test", "src"},
		Includes: []string{"*.js"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.js", "test/a.js"}, keys(candidates))
}

func TestSelector_Select_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"src/lib/a.js": "a",
	})

	// The nested root overlaps the outer one.
	candidates, err := fs.NewSelector(fs.NewWalker()).Select(context.Background(), domain.Selection{
		BaseDir:  tmpDir,
		Roots:    []string{"src", "src/lib"},
		Includes: []string{"**/*.js"},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "src/lib/a.js", candidates[0].Key)
}

func TestSelector_Select_Gitignore(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		".gitignore":      "build/\n",
		"index.js":        "index",
		"build/bundle.js": "bundle",
	})

	selector := fs.NewSelector(fs.NewWalker())

	all, err := selector.Select(context.Background(), domain.Selection{BaseDir: tmpDir})
	require.NoError(t, err)
	assert.Equal(t, []string{"build/bundle.js", "index.js"}, keys(all))

	filtered, err := selector.Select(context.Background(), domain.Selection{
		BaseDir:          tmpDir,
		RespectGitignore: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.js"}, keys(filtered))
}

func TestSelector_Select_SkipsDirectoriesMatchingIncludes(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "weird.js"), 0o750))
	writeTree(t, tmpDir, map[string]string{"real.js": "x"})

	candidates, err := fs.NewSelector(fs.NewWalker()).Select(context.Background(), domain.Selection{
		BaseDir: tmpDir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"real.js"}, keys(candidates))
}

func TestSelector_Select_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"file.js": "x"})

	tests := []struct {
		name        string
		sel         domain.Selection
		errContains string
	}{
		{
			name:        "Missing Root",
			sel:         domain.Selection{BaseDir: tmpDir, Roots: []string{"missing"}},
			errContains: domain.ErrRootNotFound.Error(),
		},
		{
			name:        "Root Is File",
			sel:         domain.Selection{BaseDir: tmpDir, Roots: []string{"file.js"}},
			errContains: domain.ErrRootNotDirectory.Error(),
		},
		{
			name:        "Invalid Include",
			sel:         domain.Selection{BaseDir: tmpDir, Includes: []string{"[abc"}},
			errContains: domain.ErrInvalidPattern.Error(),
		},
		{
			name:        "Invalid Exclude",
			sel:         domain.Selection{BaseDir: tmpDir, Excludes: []string{"{a,b"}},
			errContains: domain.ErrInvalidPattern.Error(),
		},
	}

	selector := fs.NewSelector(fs.NewWalker())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selector.Select(context.Background(), tt.sel)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestSelector_Select_Canceled(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"a.js": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewSelector(fs.NewWalker()).Select(ctx, domain.Selection{BaseDir: tmpDir})
	require.ErrorIs(t, err, context.Canceled)
}
