package memory

import (
	"context"
	"time"

	"pathfinder-be/pkg/search"

	"github.com/patrickmn/go-cache"
)

type SearchCacheRepository struct {
	cache *cache.Cache
}

func NewSearchCacheRepository(ttl time.Duration) *SearchCacheRepository {
	// Create a cache with the configured default expiration, purging expired
	// items twice per TTL
	c := cache.New(ttl, ttl/2)
	return &SearchCacheRepository{
		cache: c,
	}
}

func (r *SearchCacheRepository) Set(_ context.Context, key string, results []search.Result) {
	r.cache.Set(key, results, cache.DefaultExpiration)
}

func (r *SearchCacheRepository) Get(_ context.Context, key string) ([]search.Result, bool) {
	if x, found := r.cache.Get(key); found {
		return x.([]search.Result), true
	}
	return nil, false
}

func (r *SearchCacheRepository) Count() int {
	return r.cache.ItemCount()
}
