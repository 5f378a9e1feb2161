package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
