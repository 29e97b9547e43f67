package service

import (
	"context"
	"testing"
	"time"

	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/internal/repository/memory"
	"pathfinder-be/pkg/datastore"
	"pathfinder-be/pkg/search"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBeforeReady(t *testing.T) {
	store := newTestStore(t)
	svc := NewSearchService(store, memory.NewSearchCacheRepository(time.Minute), logger.NewNopLogger())

	_, err := svc.Search(context.Background(), "science", 0)
	assert.ErrorIs(t, err, datastore.ErrNotReady)

	_, err = svc.QuickSearch(context.Background(), "science")
	assert.ErrorIs(t, err, datastore.ErrNotReady)
}

func TestSearchEmptyQuery(t *testing.T) {
	_, svc, cache := newLoadedServices(t)

	for _, q := range []string{"", "   "} {
		resp, err := svc.Search(context.Background(), q, 0)
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.NotNil(t, resp.Results)
		assert.Equal(t, 0, resp.Total)
	}
	assert.Equal(t, 0, cache.Count(), "empty queries are not cached")
}

func TestSearchDedupAndCaseInsensitivity(t *testing.T) {
	_, svc, _ := newLoadedServices(t)

	lower, err := svc.Search(context.Background(), "science stream", 0)
	require.NoError(t, err)
	require.Len(t, lower.Results, 1)
	assert.Equal(t, search.TypeStream, lower.Results[0].Type)

	upper, err := svc.Search(context.Background(), "SCIENCE STREAM", 0)
	require.NoError(t, err)
	assert.Equal(t, lower.Results, upper.Results)
}

func TestSearchCachesResults(t *testing.T) {
	_, svc, cache := newLoadedServices(t)

	first, err := svc.Search(context.Background(), "engineering", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Count())

	second, err := svc.Search(context.Background(), "  Engineering ", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Count())
	assert.Equal(t, first.Results, second.Results)
}

func TestSearchLimit(t *testing.T) {
	_, svc, _ := newLoadedServices(t)

	resp, err := svc.Search(context.Background(), "engineering", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Results, 2)
	assert.Equal(t, 6, resp.Total)
}

func TestSearchWithFilters(t *testing.T) {
	_, svc, _ := newLoadedServices(t)

	resp, err := svc.Search(context.Background(), "/type:stream engineering", 0)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Science Stream", resp.Results[0].Name)

	resp, err = svc.Search(context.Background(), "entrance /cat:medical", 0)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "NEET UG", resp.Results[0].Name)
	assert.Equal(t, "Medical", resp.Results[0].Category)
}

func TestQuickSearch(t *testing.T) {
	_, svc, _ := newLoadedServices(t)

	resp, err := svc.QuickSearch(context.Background(), "je")
	require.NoError(t, err)
	assert.Empty(t, resp.Results, "two characters do not trigger live search")

	resp, err = svc.QuickSearch(context.Background(), "engineering")
	require.NoError(t, err)
	assert.Len(t, resp.Results, QuickSearchLimit)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, "Science Stream", resp.Results[0].Name)
}

func TestWarm(t *testing.T) {
	_, svc, cache := newLoadedServices(t)

	warmed := svc.Warm(context.Background(), []string{"engineering", "medical", ""})
	assert.Equal(t, 3, warmed)
	assert.Equal(t, 2, cache.Count())
}

func newStoreFromFiles(t *testing.T, files map[string]string) *datastore.Store {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, "/data/"+name, []byte(body), 0o644))
	}
	store := datastore.NewStore(datastore.NewFSFetcher(fs, "/data"), time.Second, logger.NewNopLogger())
	store.LoadAll(context.Background())
	return store
}

func TestSearchCacheIsScopedToSnapshot(t *testing.T) {
	shared := memory.NewSearchCacheRepository(time.Minute)
	files := func(name string) map[string]string {
		return map[string]string{
			"career.json":  `{"streams": [{"id": "science", "name": "` + name + `", "description": "science careers"}]}`,
			"streams.json": `{"streams": {}}`,
			"exams.json":   `{"examCategories": []}`,
		}
	}

	storeA := newStoreFromFiles(t, files("Alpha Science"))
	storeB := newStoreFromFiles(t, files("Beta Science"))
	require.NotEqual(t, storeA.Fingerprint(), storeB.Fingerprint())

	respA, err := NewSearchService(storeA, shared, logger.NewNopLogger()).Search(context.Background(), "science", 0)
	require.NoError(t, err)
	respB, err := NewSearchService(storeB, shared, logger.NewNopLogger()).Search(context.Background(), "science", 0)
	require.NoError(t, err)

	require.Len(t, respA.Results, 1)
	require.Len(t, respB.Results, 1)
	assert.Equal(t, "Alpha Science", respA.Results[0].Name)
	assert.Equal(t, "Beta Science", respB.Results[0].Name)
	assert.Equal(t, 2, shared.Count())

	storeA2 := newStoreFromFiles(t, files("Alpha Science"))
	assert.Equal(t, storeA.Fingerprint(), storeA2.Fingerprint(), "identical bytes share cache entries")
}

func TestSearchSkipsCacheWhenDegraded(t *testing.T) {
	cache := memory.NewSearchCacheRepository(time.Minute)
	store := newStoreFromFiles(t, map[string]string{"career.json": testCareerJSON})
	require.NotEmpty(t, store.Degraded())

	resp, err := NewSearchService(store, cache, logger.NewNopLogger()).Search(context.Background(), "science", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Results)
	assert.Equal(t, 0, cache.Count())
}

func TestSearchDoesNotCacheEmptyResults(t *testing.T) {
	_, svc, cache := newLoadedServices(t)

	resp, err := svc.Search(context.Background(), "astronomy", 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, cache.Count())
}
