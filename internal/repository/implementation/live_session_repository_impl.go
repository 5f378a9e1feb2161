package implementation

import (
	"context"
	"errors"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/mapper"
	"tenderdesk-be/internal/model"
	"tenderdesk-be/internal/repository/contract"
	"tenderdesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

// LiveSessionRepositoryImpl only reads; the live-tracking writer owns these rows.
type LiveSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewLiveSessionRepository(db *gorm.DB) contract.LiveSessionRepository {
	return &LiveSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *LiveSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiveSession, error) {
	var m model.LiveSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LiveSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiveSession, error) {
	var models []*model.LiveSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
