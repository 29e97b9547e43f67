package service

import (
	"context"
	"testing"
	"time"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/pkg/datastore"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoadedWarmsSearchCache(t *testing.T) {
	store, searchSvc, cache := newLoadedServices(t)

	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "catalog.loaded", searchSvc, []string{"engineering", "medical"}, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("catalog.loaded", pubSub, nil, logger.NewNopLogger())
	err := publisher.PublishCatalogLoaded(ctx, dto.CatalogLoadedMessage{
		Degraded: []datastore.DatasetName{},
		Stats:    store.GetQuickStats(),
		LoadedAt: time.Now(),
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return cache.Count() == 2
	}, time.Second, 10*time.Millisecond)
}
