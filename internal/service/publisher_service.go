package service

import (
	"context"
	"encoding/json"

	"intelliject-be/internal/dto"
	"intelliject-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService fans corpus-change notifications onto the in-process
// bus. Publishing is fire-and-forget; a bus failure never fails the write
// that triggered it.
type IPublisherService interface {
	PublishCorpusUpdated(ctx context.Context, subject string, count int)
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (s *publisherService) PublishCorpusUpdated(ctx context.Context, subject string, count int) {
	payload := dto.CorpusUpdatedMessage{
		Subject: subject,
		Count:   count,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("publisher", "failed to marshal corpus event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.log.Warn("publisher", "failed to publish corpus event", map[string]interface{}{"subject": subject, "error": err.Error()})
	}
}
