package contract

import (
	"context"

	"pathfinder-be/pkg/search"
)

// SearchCacheRepository memoizes search results. Datasets never change after
// load, so entries only expire by TTL.
type SearchCacheRepository interface {
	Get(ctx context.Context, key string) ([]search.Result, bool)
	Set(ctx context.Context, key string, results []search.Result)
}
