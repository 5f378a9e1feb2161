package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
)

// LiveSessionRepository is read-only: sessions are written by the external
// live-tracking writer.
type LiveSessionRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiveSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiveSession, error)
}
