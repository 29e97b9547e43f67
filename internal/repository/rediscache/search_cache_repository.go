package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/pkg/search"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pathfinder:"

// SearchCacheRepository shares cached results between instances serving the
// same data source. Redis errors degrade to cache misses.
type SearchCacheRepository struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewSearchCacheRepository(rdb *redis.Client, ttl time.Duration, log logger.ILogger) *SearchCacheRepository {
	return &SearchCacheRepository{rdb: rdb, ttl: ttl, logger: log}
}

func (r *SearchCacheRepository) Get(ctx context.Context, key string) ([]search.Result, bool) {
	raw, err := r.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("CACHE", "Redis get failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return nil, false
	}

	var results []search.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		r.logger.Warn("CACHE", "Discarding undecodable cache entry", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, false
	}
	return results, true
}

func (r *SearchCacheRepository) Set(ctx context.Context, key string, results []search.Result) {
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, keyPrefix+key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("CACHE", "Redis set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
