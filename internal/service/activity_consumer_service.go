package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IActivityConsumerService interface {
	Consume(ctx context.Context) error
}

// activityConsumerService drains the audit topic and persists entries.
type activityConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IActivityConsumerService {
	return &activityConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *activityConsumerService) Consume(ctx context.Context) error {
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

func (cs *activityConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload RecordActivityMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // malformed payloads cannot be retried into validity
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := entity.ActivityLog{
		Id:         uuid.New(),
		EmployeeId: payload.EmployeeId,
		Action:     payload.Action,
		EntityType: payload.EntityType,
		EntityId:   payload.EntityId,
		CreatedAt:  payload.OccurredAt,
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := uow.ActivityLogRepository().Create(ctx, &entry); err != nil {
		log.Printf("[ERROR] Failed to persist activity entry for %s: %v", payload.EmployeeId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
