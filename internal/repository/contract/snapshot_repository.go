package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.Snapshot) error
	// Delete hard-deletes; only the dedup sweep uses it.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Snapshot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Snapshot, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
