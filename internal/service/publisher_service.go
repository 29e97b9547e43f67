package service

import (
	"context"
	"encoding/json"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/pkg/events"
	pktNats "pathfinder-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	PublishCatalogLoaded(ctx context.Context, msg dto.CatalogLoadedMessage) error
}

// publisherService fans catalog events out to the in-process bus and, when
// configured, to NATS.
type publisherService struct {
	topicName string
	pubSub    message.Publisher
	nats      *pktNats.Publisher
	logger    logger.ILogger
}

func NewPublisherService(topicName string, pubSub message.Publisher, natsPub *pktNats.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		nats:      natsPub,
		logger:    log,
	}
}

func (p *publisherService) PublishCatalogLoaded(ctx context.Context, msg dto.CatalogLoadedMessage) error {
	evt := events.NewEvent(events.CatalogLoaded, map[string]interface{}{
		"degraded":  msg.Degraded,
		"warnings":  msg.Warnings,
		"stats":     msg.Stats,
		"loaded_at": msg.LoadedAt,
	})
	msg.EventId = evt.EventId()

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := p.pubSub.Publish(p.topicName, message.NewMessage(evt.EventId(), payload)); err != nil {
		return err
	}

	if p.nats != nil {
		if err := p.nats.Publish(ctx, evt); err != nil {
			// NATS is best effort, the local bus already has the event
			p.logger.Error("EVENTS", "Failed to publish CATALOG_LOADED to NATS", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}
