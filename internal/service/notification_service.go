package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tenderdesk-be/internal/model"
	"tenderdesk-be/internal/pkg/logger"
	"tenderdesk-be/internal/repository"
	"tenderdesk-be/pkg/events"
	pktNats "tenderdesk-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(employeeID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// NotificationService consumes domain events and fans them out as inbox
// rows plus real-time pushes. Which event maps to which audience lives in
// the notification_types registry, not in code.
type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject carries the stream prefix; the registry stores bare codes.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("No registry entry for code '%s'", typeCode), map[string]interface{}{"error": err.Error()})
		return nil
	}
	if !config.IsActive {
		s.logger.Info("NotificationService", fmt.Sprintf("Notification type '%s' is inactive", typeCode), nil)
		return nil
	}

	// Broadcasts are push-only: one websocket fan-out, no inbox row per
	// employee. The roster is small but a broadcast is ephemeral by nature.
	if config.TargetType == "BROADCAST" {
		notif := s.buildNotification(uuid.Nil, config, event)
		if s.delivery != nil {
			s.delivery.Broadcast(notif)
		}
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, config, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", event.EventType()), map[string]interface{}{"error": err})
		return err // returning the error makes NATS redeliver
	}

	for _, employeeID := range recipients {
		notif := s.buildNotification(employeeID, config, event)

		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for employee %s", employeeID), map[string]interface{}{"error": err})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(employeeID, notif)
		}
	}

	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, config *model.NotificationType, event events.Event) ([]uuid.UUID, error) {
	var employeeIDs []uuid.UUID

	switch config.TargetType {
	case "SELF":
		// By convention the acting employee travels as "user_id" in the payload.
		if uidStr, ok := event.Payload()["user_id"].(string); ok {
			uid, err := uuid.Parse(uidStr)
			if err == nil {
				employeeIDs = append(employeeIDs, uid)
			}
		} else {
			s.logger.Warn("NotificationService", fmt.Sprintf("TargetType SELF but no user_id in payload for event %s", event.EventType()), nil)
		}

	case "ADMIN":
		admins, err := s.repo.GetEmployeesByRole(ctx, "admin")
		if err != nil {
			return nil, err
		}
		for _, e := range admins {
			employeeIDs = append(employeeIDs, e.Id)
		}

	case "ROLE":
		employees, err := s.repo.GetEmployeesByRole(ctx, config.TargetRole)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			employeeIDs = append(employeeIDs, e.Id)
		}
	}

	return employeeIDs, nil
}

func (s *NotificationService) buildNotification(employeeID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	// Simple template engine: {key} placeholders filled from the payload.
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprintf("%v", v))
	}

	entityType := ""
	var entityID *uuid.UUID
	if et, ok := payload["entity_type"].(string); ok {
		entityType = et
	}
	if eidStr, ok := payload["entity_id"].(string); ok {
		if eid, err := uuid.Parse(eidStr); err == nil {
			entityID = &eid
		}
	}

	metaMap := make(map[string]interface{})
	for k, v := range payload {
		metaMap[k] = v
	}
	// deep link for the client when we know which entity this is about
	if entityType != "" && entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     employeeID,
		TypeCode:   config.Code,
		Title:      config.DisplayName,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// GetNotifications fetches the employee's inbox, newest first.
func (s *NotificationService) GetNotifications(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByEmployeeID(ctx, employeeID, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, employeeID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, employeeID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, employeeID)
}
