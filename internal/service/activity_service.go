package service

import (
	"context"
	"encoding/json"
	"time"

	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// RecordActivityMessage is the watermill payload for an audit write. The
// write happens off the request path; losing one entry on crash is accepted.
type RecordActivityMessage struct {
	EmployeeId uuid.UUID  `json:"employee_id"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityId   *uuid.UUID `json:"entity_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

type IActivityService interface {
	Record(ctx context.Context, employeeId uuid.UUID, action, entityType string, entityId *uuid.UUID)
	List(ctx context.Context, employeeId *uuid.UUID, limit, offset int) ([]*dto.ActivityLogResponse, error)
}

type activityService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewActivityService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IActivityService {
	return &activityService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// Record enqueues the audit entry. Best-effort: serialization or publish
// failures are dropped silently, the business mutation already succeeded.
func (s *activityService) Record(ctx context.Context, employeeId uuid.UUID, action, entityType string, entityId *uuid.UUID) {
	msg := RecordActivityMessage{
		EmployeeId: employeeId,
		Action:     action,
		EntityType: entityType,
		EntityId:   entityId,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	_ = s.publisherService.Publish(ctx, payload)
}

func (s *activityService) List(ctx context.Context, employeeId *uuid.UUID, limit, offset int) ([]*dto.ActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if employeeId != nil {
		specs = append(specs, specification.ByEmployeeID{EmployeeID: *employeeId})
	}

	logs, err := uow.ActivityLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, &dto.ActivityLogResponse{
			Id:         l.Id,
			EmployeeId: l.EmployeeId,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityId:   l.EntityId,
			CreatedAt:  l.CreatedAt,
		})
	}
	return result, nil
}
