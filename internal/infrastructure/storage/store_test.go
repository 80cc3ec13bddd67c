package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mutant/internal/domain"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	db, err := NewSQLite(filepath.Join(dir, "sqlite", "dna.db"), DriverModernc)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"fs":     NewFS(filepath.Join(dir, "fs")),
		"sqlite": db,
		"cached": NewCached(NewMemory(), 2),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Find(ctx, "AAAA,CCCC,GGGG,TTTT")
			require.ErrorIs(t, err, domain.ErrNotFound)

			stats, err := st.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.Stats{}, stats)

			require.NoError(t, st.Save(ctx, &domain.Record{ID: "1", DNA: "AAAA,CCCC,GGGG,TTTT", Mutant: true, CreatedAt: 10}))
			require.NoError(t, st.Save(ctx, &domain.Record{ID: "2", DNA: "ATGC,CAGT,TTAT,AGAC", Mutant: false, CreatedAt: 11}))
			require.NoError(t, st.Save(ctx, &domain.Record{ID: "3", DNA: "ATGA,CAGT,TTAT,AGAC", Mutant: false, CreatedAt: 12}))

			got, err := st.Find(ctx, "AAAA,CCCC,GGGG,TTTT")
			require.NoError(t, err)
			assert.Equal(t, "1", got.ID)
			assert.True(t, got.Mutant)
			assert.Equal(t, int64(10), got.CreatedAt)

			// First write wins.
			require.NoError(t, st.Save(ctx, &domain.Record{ID: "9", DNA: "AAAA,CCCC,GGGG,TTTT", Mutant: false}))
			got, err = st.Find(ctx, "AAAA,CCCC,GGGG,TTTT")
			require.NoError(t, err)
			assert.Equal(t, "1", got.ID)
			assert.True(t, got.Mutant)

			stats, err = st.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), stats.CountMutant)
			assert.Equal(t, int64(2), stats.CountHuman)
			assert.InDelta(t, 0.5, stats.Ratio, 1e-9)

			assert.Error(t, st.Save(ctx, &domain.Record{ID: "x"}))
		})
	}
}

func TestCachedServesHits(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	c := NewCached(mem, 1)
	require.NoError(t, c.Save(ctx, &domain.Record{ID: "1", DNA: "A", Mutant: true}))
	require.NoError(t, c.Save(ctx, &domain.Record{ID: "2", DNA: "C"}))
	assert.Equal(t, 1, c.Len())

	// Evicted entries fall through to the backend.
	got, err := c.Find(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

func TestMemoryConcurrentSave(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Save(ctx, &domain.Record{DNA: "AAAA,AAAA,AAAA,AAAA", Mutant: true})
		}()
	}
	wg.Wait()
	st, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.CountMutant)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"", "memory", "fs", "sqlite"} {
		st, err := Open(Options{Driver: d, Path: dir, CacheSize: 4})
		require.NoError(t, err, d)
		_, ok := st.(*Cached)
		assert.True(t, ok, d)
		require.NoError(t, st.Close())
	}
	_, err := Open(Options{Driver: "redis"})
	assert.Error(t, err)
	_, err = Open(Options{Driver: "sqlite", Path: dir, SQLiteDriver: "postgres"})
	assert.Error(t, err)
}
