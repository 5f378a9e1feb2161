package implementation

import (
	"context"
	"time"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/mapper"
	"tenderdesk-be/internal/model"
	"tenderdesk-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TenderMapper
}

func NewStudyRepository(db *gorm.DB) contract.StudyRepository {
	return &StudyRepositoryImpl{
		db:     db,
		mapper: mapper.NewTenderMapper(),
	}
}

// ReplaceItems swaps the full item list in one transaction so a partial
// save can never leave a study half-updated.
func (r *StudyRepositoryImpl) ReplaceItems(ctx context.Context, tenderId uuid.UUID, items []*entity.TenderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tender_id = ?", tenderId).Delete(&model.TenderItem{}).Error; err != nil {
			return err
		}
		now := time.Now()
		for _, item := range items {
			m := r.mapper.ItemToModel(item)
			m.TenderId = tenderId
			if m.Id == uuid.Nil {
				m.Id = uuid.New()
			}
			m.CreatedAt = now
			if err := tx.Create(m).Error; err != nil {
				return err
			}
			*item = *r.mapper.ItemToEntity(m)
		}
		return nil
	})
}

func (r *StudyRepositoryImpl) FindItems(ctx context.Context, tenderId uuid.UUID) ([]*entity.TenderItem, error) {
	var models []*model.TenderItem
	err := r.db.WithContext(ctx).
		Where("tender_id = ?", tenderId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}

func (r *StudyRepositoryImpl) AddCompetitor(ctx context.Context, price *entity.CompetitorPrice) error {
	m := r.mapper.CompetitorToModel(price)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*price = *r.mapper.CompetitorToEntity(m)
	return nil
}

func (r *StudyRepositoryImpl) DeleteCompetitor(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CompetitorPrice{}, id).Error
}

func (r *StudyRepositoryImpl) FindCompetitors(ctx context.Context, tenderId uuid.UUID) ([]*entity.CompetitorPrice, error) {
	var models []*model.CompetitorPrice
	err := r.db.WithContext(ctx).
		Where("tender_id = ?", tenderId).
		Order("total_price ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.CompetitorsToEntities(models), nil
}
