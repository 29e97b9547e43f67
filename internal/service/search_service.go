package service

import (
	"context"
	"strings"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/internal/repository/contract"
	"pathfinder-be/pkg/datastore"
	"pathfinder-be/pkg/search"
)

const (
	// QuickSearchLimit caps live-search suggestions.
	QuickSearchLimit = 5
	// QuickSearchMinLength is the shortest query live search reacts to.
	QuickSearchMinLength = 3
)

type ISearchService interface {
	Search(ctx context.Context, query string, limit int) (*dto.SearchResponse, error)
	QuickSearch(ctx context.Context, query string) (*dto.SearchResponse, error)
	Warm(ctx context.Context, queries []string) int
}

type searchService struct {
	store  *datastore.Store
	engine *search.Engine
	cache  contract.SearchCacheRepository
	logger logger.ILogger
}

func NewSearchService(store *datastore.Store, cache contract.SearchCacheRepository, log logger.ILogger) ISearchService {
	return &searchService{
		store:  store,
		engine: search.NewEngine(store),
		cache:  cache,
		logger: log,
	}
}

// Search runs the query against the loaded datasets. Before the store is
// ready it refuses with datastore.ErrNotReady instead of scanning partial data.
// A positive limit truncates the returned results.
func (s *searchService) Search(ctx context.Context, query string, limit int) (*dto.SearchResponse, error) {
	if !s.store.IsReady() {
		return nil, datastore.ErrNotReady
	}

	query = strings.TrimSpace(query)
	results := s.lookup(ctx, query)

	resp := &dto.SearchResponse{
		Query:   query,
		Total:   len(results),
		Results: results,
	}
	if limit > 0 && len(results) > limit {
		resp.Results = results[:limit]
	}
	resp.Count = len(resp.Results)
	return resp, nil
}

// QuickSearch mirrors the live-search box: nothing below three characters,
// at most five suggestions.
func (s *searchService) QuickSearch(ctx context.Context, query string) (*dto.SearchResponse, error) {
	if !s.store.IsReady() {
		return nil, datastore.ErrNotReady
	}
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < QuickSearchMinLength {
		return &dto.SearchResponse{Query: trimmed, Results: []search.Result{}}, nil
	}
	return s.Search(ctx, trimmed, QuickSearchLimit)
}

// Warm precomputes results for the given queries and returns how many were
// cached.
func (s *searchService) Warm(ctx context.Context, queries []string) int {
	warmed := 0
	for _, q := range queries {
		if ctx.Err() != nil {
			break
		}
		if _, err := s.Search(ctx, q, 0); err == nil {
			warmed++
		}
	}
	s.logger.Debug("SEARCH", "Search cache warmed", map[string]interface{}{"queries": warmed})
	return warmed
}

func (s *searchService) lookup(ctx context.Context, query string) []search.Result {
	if query == "" {
		return []search.Result{}
	}

	// Degraded snapshots neither read nor write the shared cache
	cacheable := len(s.store.Degraded()) == 0
	key := cacheKey(s.store.Fingerprint(), query)
	if cacheable {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached
		}
	}

	filters := search.ParseQuery(query)
	var results []search.Result
	if filters.HasFilters() {
		results = filters.Apply(s.engine.Search(filters.SearchQuery))
	} else {
		results = s.engine.Search(query)
	}

	if cacheable && len(results) > 0 {
		s.cache.Set(ctx, key, results)
	}
	return results
}

// cacheKey scopes a query to the snapshot it was computed from.
func cacheKey(fingerprint, query string) string {
	return "search:" + fingerprint + ":" + strings.ToLower(query)
}
