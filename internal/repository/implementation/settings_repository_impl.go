package implementation

import (
	"context"
	"errors"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/mapper"
	"tenderdesk-be/internal/model"
	"tenderdesk-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context) (*entity.SchedulerSettings, error) {
	var m model.SchedulerSettings
	if err := r.db.WithContext(ctx).First(&m, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) Save(ctx context.Context, settings *entity.SchedulerSettings) error {
	m := r.mapper.ToModel(settings)
	m.Id = 1
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}
