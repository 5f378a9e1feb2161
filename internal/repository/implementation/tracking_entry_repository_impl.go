package implementation

import (
	"context"
	"errors"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/mapper"
	"tenderdesk-be/internal/model"
	"tenderdesk-be/internal/repository/contract"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackingEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TrackingMapper
}

func NewTrackingEntryRepository(db *gorm.DB) contract.TrackingEntryRepository {
	return &TrackingEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewTrackingMapper(),
	}
}

func (r *TrackingEntryRepositoryImpl) Create(ctx context.Context, entry *entity.TrackingEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrackingEntryRepositoryImpl) Update(ctx context.Context, entry *entity.TrackingEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrackingEntryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TrackingEntry{}, id).Error
}

func (r *TrackingEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrackingEntry, error) {
	var m model.TrackingEntry
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TrackingEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrackingEntry, error) {
	var models []*model.TrackingEntry
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TrackingEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.TrackingEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
