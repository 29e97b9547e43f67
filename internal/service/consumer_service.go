package service

import (
	"context"
	"encoding/json"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService reacts to CATALOG_LOADED: it reports degraded datasets and
// warms the search cache with the configured popular queries.
type consumerService struct {
	subscriber    message.Subscriber
	topicName     string
	searchService ISearchService
	warmQueries   []string
	logger        logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	searchService ISearchService,
	warmQueries []string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:    subscriber,
		topicName:     topicName,
		searchService: searchService,
		warmQueries:   warmQueries,
		logger:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Invalid messages are acked so they are not redelivered forever
	defer msg.Ack()

	var payload dto.CatalogLoadedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		return
	}

	details := map[string]interface{}{
		"event_id": payload.EventId,
		"degraded": payload.Degraded,
		"warnings": payload.Warnings,
		"streams":  payload.Stats.TotalStreams,
		"exams":    payload.Stats.TotalExams,
	}
	if len(payload.Degraded) > 0 {
		cs.logger.Warn("CONSUMER", "Catalog loaded in degraded mode", details)
	} else {
		cs.logger.Info("CONSUMER", "Catalog loaded", details)
	}

	cs.searchService.Warm(ctx, cs.warmQueries)
}
