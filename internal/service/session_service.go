package service

import (
	"context"

	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"
	"tenderdesk-be/pkg/utils"
)

type ISessionService interface {
	GetAll(ctx context.Context) ([]*dto.LiveSessionResponse, error)
	GetActive(ctx context.Context) ([]*dto.LiveSessionResponse, error)
}

// sessionService reads the live-tracking rows an external writer maintains.
type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{uowFactory: uowFactory}
}

func (s *sessionService) GetAll(ctx context.Context) ([]*dto.LiveSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.LiveSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "employee_name", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toSessionResponses(sessions), nil
}

func (s *sessionService) GetActive(ctx context.Context) ([]*dto.LiveSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.LiveSessionRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "employee_name", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toSessionResponses(sessions), nil
}

func toSessionResponses(sessions []*entity.LiveSession) []*dto.LiveSessionResponse {
	result := make([]*dto.LiveSessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, &dto.LiveSessionResponse{
			Id:               sess.Id,
			EmployeeId:       sess.EmployeeId,
			EmployeeName:     sess.EmployeeName,
			SessionStart:     sess.SessionStart,
			TotalSeconds:     sess.TotalSeconds,
			Duration:         utils.FormatHMS(sess.TotalSeconds),
			Status:           sess.Status,
			PermanentSession: sess.PermanentSession,
			LastUpdate:       sess.LastUpdate,
		})
	}
	return result
}
