package service

import (
	"context"
	"testing"
	"time"

	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/internal/repository/memory"
	"pathfinder-be/pkg/datastore"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testCareerJSON = `{"streams": [
	{"id": "science", "name": "Science Stream", "description": "Engineering, Medical, Research careers",
	 "jobOpportunities": [{"field": "Engineering & Technology", "jobs": ["Software Engineer"]}]},
	{"id": "commerce", "name": "Commerce Stream", "description": "Business, Finance, Accounting careers"}
]}`

const testStreamsJSON = `{"streams": {
	"science": {"name": "Science Stream", "description": "Engineering and medicine"},
	"arts": {"name": "Arts Stream", "description": "Civil Services, Humanities"}
}}`

const testExamsJSON = `{"examCategories": [
	{"category": "Engineering", "exams": [
		{"name": "JEE Main", "fullForm": "Joint Entrance Examination", "purpose": "Engineering Entrance Exam"},
		{"name": "JEE Advanced", "purpose": "Engineering admission to IITs"},
		{"name": "BITSAT", "purpose": "Engineering admission to BITS"},
		{"name": "VITEEE", "purpose": "Engineering admission to VIT"},
		{"name": "COMEDK", "purpose": "Engineering admission in Karnataka"}
	]},
	{"category": "Medical", "exams": [{"name": "NEET UG", "purpose": "Medical entrance exam"}]}
], "examLevels": {"After 12th": [{"name": "JEE Main", "purpose": "Engineering Entrance Exam"}]}}`

func newTestStore(t *testing.T) *datastore.Store {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range map[string]string{
		"career.json":  testCareerJSON,
		"streams.json": testStreamsJSON,
		"exams.json":   testExamsJSON,
	} {
		require.NoError(t, afero.WriteFile(fs, "/data/"+name, []byte(body), 0o644))
	}
	return datastore.NewStore(datastore.NewFSFetcher(fs, "/data"), time.Second, logger.NewNopLogger())
}

func newLoadedServices(t *testing.T) (*datastore.Store, ISearchService, *memory.SearchCacheRepository) {
	t.Helper()
	store := newTestStore(t)
	store.LoadAll(context.Background())
	cache := memory.NewSearchCacheRepository(time.Minute)
	return store, NewSearchService(store, cache, logger.NewNopLogger()), cache
}
