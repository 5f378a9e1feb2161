package service

import (
	"context"
	"fmt"
	"time"

	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"
	"tenderdesk-be/pkg/events"
	"tenderdesk-be/pkg/storage"

	"github.com/google/uuid"
)

type UploadDocumentInput struct {
	CompanyId   *uuid.UUID
	TenderId    *uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

type IDocumentService interface {
	Upload(ctx context.Context, employeeId uuid.UUID, input *UploadDocumentInput) (*dto.CompanyDocumentResponse, error)
	ListByCompany(ctx context.Context, companyId uuid.UUID) ([]*dto.CompanyDocumentResponse, error)
	ListByTender(ctx context.Context, tenderId uuid.UUID) ([]*dto.CompanyDocumentResponse, error)
	Delete(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error
}

type documentService struct {
	uowFactory      unitofwork.RepositoryFactory
	fileStorage     storage.FileStorage
	eventPublisher  EventPublisher
	activityService IActivityService
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	fileStorage storage.FileStorage,
	eventPublisher EventPublisher,
	activityService IActivityService,
) IDocumentService {
	return &documentService{
		uowFactory:      uowFactory,
		fileStorage:     fileStorage,
		eventPublisher:  eventPublisher,
		activityService: activityService,
	}
}

func (s *documentService) Upload(ctx context.Context, employeeId uuid.UUID, input *UploadDocumentInput) (*dto.CompanyDocumentResponse, error) {
	if input.CompanyId == nil && input.TenderId == nil {
		return nil, fmt.Errorf("document must belong to a company or a tender")
	}

	folder := "documents"
	if input.TenderId != nil {
		folder = "tenders"
	}

	uploaded, err := s.fileStorage.Upload(input.Data, folder, input.Filename)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc := entity.CompanyDocument{
		Id:          uuid.New(),
		CompanyId:   input.CompanyId,
		TenderId:    input.TenderId,
		Name:        input.Filename,
		URL:         uploaded.URL,
		Path:        uploaded.Path,
		SizeBytes:   int64(len(input.Data)),
		ContentType: input.ContentType,
		UploadedBy:  employeeId,
		CreatedAt:   time.Now(),
	}
	if err := uow.CompanyDocumentRepository().Create(ctx, &doc); err != nil {
		// roll the stored file back; a metadata row without a file is worse
		_ = s.fileStorage.Delete(uploaded.Path)
		return nil, err
	}

	s.activityService.Record(ctx, employeeId, "document_uploaded", "document", &doc.Id)
	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.New(events.TypeDocumentUploaded, map[string]interface{}{
			"document_id": doc.Id.String(),
			"name":        doc.Name,
			"user_id":     employeeId.String(),
		}))
	}

	return toDocumentResponse(&doc), nil
}

func (s *documentService) ListByCompany(ctx context.Context, companyId uuid.UUID) ([]*dto.CompanyDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.CompanyDocumentRepository().FindAll(ctx,
		specification.Filter("company_id", companyId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toDocumentResponses(docs), nil
}

func (s *documentService) ListByTender(ctx context.Context, tenderId uuid.UUID) ([]*dto.CompanyDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.CompanyDocumentRepository().FindAll(ctx,
		specification.ByTenderID{TenderID: tenderId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toDocumentResponses(docs), nil
}

func (s *documentService) Delete(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.CompanyDocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("document %s not found", id)
	}

	if err := uow.CompanyDocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	// best-effort: a leftover file is harmless, the row is gone
	if err := s.fileStorage.Delete(doc.Path); err != nil {
		fmt.Printf("[WARN] Failed to delete stored file %s: %v\n", doc.Path, err)
	}

	s.activityService.Record(ctx, employeeId, "document_deleted", "document", &id)
	return nil
}

func toDocumentResponse(d *entity.CompanyDocument) *dto.CompanyDocumentResponse {
	res := &dto.CompanyDocumentResponse{
		Id:         d.Id,
		Name:       d.Name,
		URL:        d.URL,
		SizeBytes:  d.SizeBytes,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}
	if d.CompanyId != nil {
		res.CompanyId = *d.CompanyId
	}
	return res
}

func toDocumentResponses(docs []*entity.CompanyDocument) []*dto.CompanyDocumentResponse {
	result := make([]*dto.CompanyDocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, toDocumentResponse(d))
	}
	return result
}
