package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TenderRepository interface {
	Create(ctx context.Context, tender *entity.Tender) error
	Update(ctx context.Context, tender *entity.Tender) error
	// Delete moves the tender to the trash (soft delete); tenders are never
	// hard-deleted.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tender, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tender, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
