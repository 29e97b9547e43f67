package rediscache

import (
	"context"
	"testing"
	"time"

	"pathfinder-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestGetDegradesToMissWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	repo := NewSearchCacheRepository(rdb, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	repo.Set(ctx, "search:jee", nil)
	_, found := repo.Get(ctx, "search:jee")
	assert.False(t, found)
}
