package service

import (
	"context"
	"encoding/json"

	"intelliject-be/internal/dto"
	"intelliject-be/internal/pkg/logger"
	"intelliject-be/pkg/database"
	"intelliject-be/pkg/events"
	pktnats "intelliject-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService keeps the flat subjects file in step with the live
// corpus: after every corpus write it re-reads the distinct subject list
// and rewrites subjects.json, so a later flat-file-mode start still sees
// current subjects.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	questions IQuestionService
	subjects  *database.SubjectsFile
	events    *pktnats.Publisher
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	questions IQuestionService,
	subjects *database.SubjectsFile,
	eventPublisher *pktnats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		questions: questions,
		subjects:  subjects,
		events:    eventPublisher,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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
	var payload dto.CorpusUpdatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal corpus event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid messages are never retriable
		return
	}

	cs.log.Info("consumer", "corpus updated, refreshing subjects file", map[string]interface{}{
		"subject": payload.Subject,
		"count":   payload.Count,
	})

	result := cs.questions.ListSubjects(ctx)
	if result.Outcome != OutcomeOK {
		// Backend unreachable; the file already holds the best known list.
		msg.Ack()
		return
	}

	if err := cs.subjects.Write(result.Subjects); err != nil {
		cs.log.Warn("consumer", "failed to rewrite subjects file", map[string]interface{}{"error": err.Error()})
	}

	// Mirror the update to external observers, best-effort.
	if err := cs.events.Publish(ctx, events.NewCorpusUpdated(payload.Subject, payload.Count)); err != nil {
		cs.log.Warn("consumer", "failed to publish corpus event", map[string]interface{}{"error": err.Error()})
	}
	msg.Ack()
}
