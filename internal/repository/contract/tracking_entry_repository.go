package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TrackingEntryRepository interface {
	Create(ctx context.Context, entry *entity.TrackingEntry) error
	Update(ctx context.Context, entry *entity.TrackingEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrackingEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrackingEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
