package bootstrap

import (
	"context"
	"time"

	"pathfinder-be/internal/config"
	"pathfinder-be/internal/controller"
	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/handler"
	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/internal/repository/contract"
	"pathfinder-be/internal/repository/memory"
	"pathfinder-be/internal/repository/rediscache"
	"pathfinder-be/internal/service"
	"pathfinder-be/internal/websocket"
	"pathfinder-be/pkg/datastore"

	pktNats "pathfinder-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// CatalogTopic is the in-process topic carrying CATALOG_LOADED.
const CatalogTopic = "catalog.loaded"

type Container struct {
	Logger logger.ILogger
	Store  *datastore.Store

	// Controllers
	CatalogController controller.ICatalogController
	SearchController  controller.ISearchController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	PublisherService service.IPublisherService

	// WebSockets
	ReadyHandler *handler.ReadyHandler
	WebSocketHub *websocket.Hub

	natsPub *pktNats.Publisher
	rdb     *redis.Client
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	fetcher := datastore.NewFetcher(cfg.Data.Source)
	store := datastore.NewStore(fetcher, cfg.Data.FetchTimeout, sysLogger)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{Persistent: true},
		watermill.NopLogger{},
	)

	// 3. Infrastructure
	// NATS
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			natsPub = pub
		}
	}

	// Redis
	var cache contract.SearchCacheRepository
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
		cancel()
		cache = rediscache.NewSearchCacheRepository(rdb, cfg.Search.CacheTTL, sysLogger)
	} else {
		cache = memory.NewSearchCacheRepository(cfg.Search.CacheTTL)
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(sysLogger)

	// 4. Services
	searchService := service.NewSearchService(store, cache, sysLogger)
	catalogService := service.NewCatalogService(store)
	publisherService := service.NewPublisherService(CatalogTopic, pubSub, natsPub, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		CatalogTopic,
		searchService,
		cfg.Search.WarmQueries,
		sysLogger,
	)

	store.OnReady(func() {
		status := store.Status()
		stats := store.GetQuickStats()

		wsHub.BroadcastReady(dto.ReadyFrame{Degraded: status.Degraded, Stats: stats})

		msg := dto.CatalogLoadedMessage{
			Degraded: status.Degraded,
			Warnings: len(status.Warnings),
			Stats:    stats,
		}
		if status.LoadedAt != nil {
			msg.LoadedAt = *status.LoadedAt
		}
		if err := publisherService.PublishCatalogLoaded(context.Background(), msg); err != nil {
			sysLogger.Error("BOOTSTRAP", "Failed to publish CATALOG_LOADED", map[string]interface{}{"error": err.Error()})
		}
	})

	return &Container{
		Logger: sysLogger,
		Store:  store,

		CatalogController: controller.NewCatalogController(catalogService),
		SearchController:  controller.NewSearchController(searchService),

		ConsumerService:  consumerService,
		PublisherService: publisherService,

		ReadyHandler: handler.NewReadyHandler(wsHub, sysLogger),
		WebSocketHub: wsHub,

		natsPub: natsPub,
		rdb:     rdb,
	}
}

// Close releases external connections and flushes the logger.
func (c *Container) Close() {
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	_ = c.Logger.Sync()
}
