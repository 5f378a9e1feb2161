package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CompanyDocumentRepository interface {
	Create(ctx context.Context, doc *entity.CompanyDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanyDocument, error)
}
