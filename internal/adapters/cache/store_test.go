package cache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reform/internal/adapters/cache"
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestTable_Operations(t *testing.T) {
	table := cache.NewTable(map[string]domain.Fingerprint{"a.js": "1"})

	fp, ok := table.Get("a.js")
	assert.True(t, ok)
	assert.Equal(t, domain.Fingerprint("1"), fp)

	table.Set("a.js", "2")
	table.Set("b.js", "3")
	assert.Equal(t, 2, table.Len())

	fp, _ = table.Get("a.js")
	assert.Equal(t, domain.Fingerprint("2"), fp)

	table.Delete("b.js")
	_, ok = table.Get("b.js")
	assert.False(t, ok)

	snap := table.Snapshot()
	snap["c.js"] = "4"
	assert.Equal(t, 1, table.Len(), "snapshot must be a copy")
}

func TestTable_ConcurrentAccess(t *testing.T) {
	table := cache.NewTable(nil)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("f%d.js", i)
			table.Set(key, domain.Fingerprint(key))
			_, _ = table.Get(key)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, table.Len())
}

func TestStore_LoadMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cache.NewStore(mocks.NewMockLogger(ctrl))

	c, err := store.Load(filepath.Join(t.TempDir(), "absent.properties"))
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	path := filepath.Join(t.TempDir(), ".reform", domain.CacheFileName)
	store := cache.NewStore(logger)

	table := cache.NewTable(map[string]domain.Fingerprint{
		"src/a.js":     "0123456789abcdef",
		"src/ü b=c.js": "fedcba9876543210",
	})
	require.NoError(t, store.Save(path, table))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, table.Snapshot(), loaded.Snapshot())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the cache file should remain")
}

func TestStore_LoadWarnsOnMalformedLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	path := filepath.Join(t.TempDir(), domain.CacheFileName)
	require.NoError(t, os.WriteFile(path, []byte("good=1\nbroken\n"), 0o600))

	logger.EXPECT().Warn("ignored malformed cache lines", "path", path, "count", 1)

	c, err := cache.NewStore(logger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestStore_LoadUnreadable(t *testing.T) {
	ctrl := gomock.NewController(t)

	// A directory in place of the file cannot be read.
	path := t.TempDir()

	_, err := cache.NewStore(mocks.NewMockLogger(ctrl)).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheReadFailed.Error())
}

func TestStore_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	// A regular file where the cache directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := cache.NewStore(mocks.NewMockLogger(ctrl)).Save(
		filepath.Join(blocker, domain.CacheFileName),
		cache.NewTable(nil),
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheCreateFailed.Error())
}
