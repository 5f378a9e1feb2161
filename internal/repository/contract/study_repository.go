package contract

import (
	"context"

	"tenderdesk-be/internal/entity"

	"github.com/google/uuid"
)

// StudyRepository covers the price-study side of a tender: line items and
// recorded competitor offers.
type StudyRepository interface {
	ReplaceItems(ctx context.Context, tenderId uuid.UUID, items []*entity.TenderItem) error
	FindItems(ctx context.Context, tenderId uuid.UUID) ([]*entity.TenderItem, error)
	AddCompetitor(ctx context.Context, price *entity.CompetitorPrice) error
	DeleteCompetitor(ctx context.Context, id uuid.UUID) error
	FindCompetitors(ctx context.Context, tenderId uuid.UUID) ([]*entity.CompetitorPrice, error)
}
