package service

import (
	"context"
	"fmt"
	"time"

	"tenderdesk-be/internal/board"
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITenderService interface {
	GetAll(ctx context.Context) ([]*dto.TenderResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TenderResponse, error)
	Create(ctx context.Context, employeeId uuid.UUID, req *dto.CreateTenderRequest) (*dto.TenderResponse, error)
	Update(ctx context.Context, employeeId uuid.UUID, req *dto.UpdateTenderRequest) (*dto.TenderResponse, error)
	Delete(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error
}

type tenderService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
	thresholds      board.Thresholds
}

func NewTenderService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
	thresholds board.Thresholds,
) ITenderService {
	return &tenderService{
		uowFactory:      uowFactory,
		activityService: activityService,
		thresholds:      thresholds,
	}
}

func (s *tenderService) GetAll(ctx context.Context) ([]*dto.TenderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenders, err := uow.TenderRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TenderResponse, 0, len(tenders))
	for _, t := range tenders {
		result = append(result, s.toResponse(t))
	}
	return result, nil
}

func (s *tenderService) Show(ctx context.Context, id uuid.UUID) (*dto.TenderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender, err := uow.TenderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("tender %s not found", id)
	}
	return s.toResponse(tender), nil
}

func (s *tenderService) Create(ctx context.Context, employeeId uuid.UUID, req *dto.CreateTenderRequest) (*dto.TenderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender := entity.Tender{
		Id:                 uuid.New(),
		Title:              req.Title,
		Entity:             req.Entity,
		Description:        req.Description,
		ReferenceNumber:    req.ReferenceNumber,
		EstimatedValue:     req.EstimatedValue,
		SubmissionDeadline: req.SubmissionDeadline,
		CreatedAt:          time.Now(),
	}
	if err := uow.TenderRepository().Create(ctx, &tender); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, employeeId, "tender_created", "tender", &tender.Id)
	return s.toResponse(&tender), nil
}

func (s *tenderService) Update(ctx context.Context, employeeId uuid.UUID, req *dto.UpdateTenderRequest) (*dto.TenderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender, err := uow.TenderRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("tender %s not found", req.Id)
	}

	tender.Title = req.Title
	tender.Entity = req.Entity
	tender.Description = req.Description
	tender.ReferenceNumber = req.ReferenceNumber
	tender.EstimatedValue = req.EstimatedValue
	tender.SubmissionDeadline = req.SubmissionDeadline

	if err := uow.TenderRepository().Update(ctx, tender); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, employeeId, "tender_updated", "tender", &tender.Id)
	return s.toResponse(tender), nil
}

// Delete soft-deletes: the tender moves to the trash and disappears from the
// board on the next load.
func (s *tenderService) Delete(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender, err := uow.TenderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if tender == nil {
		return fmt.Errorf("tender %s not found", id)
	}

	if err := uow.TenderRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.activityService.Record(ctx, employeeId, "tender_deleted", "tender", &id)
	return nil
}

func (s *tenderService) toResponse(t *entity.Tender) *dto.TenderResponse {
	return &dto.TenderResponse{
		Id:                 t.Id,
		Title:              t.Title,
		Entity:             t.Entity,
		Description:        t.Description,
		ReferenceNumber:    t.ReferenceNumber,
		EstimatedValue:     t.EstimatedValue,
		Priority:           string(s.thresholds.Classify(t.EstimatedValue)),
		SubmissionDeadline: t.SubmissionDeadline,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
