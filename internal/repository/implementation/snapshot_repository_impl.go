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

type SnapshotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SnapshotMapper
}

func NewSnapshotRepository(db *gorm.DB) contract.SnapshotRepository {
	return &SnapshotRepositoryImpl{
		db:     db,
		mapper: mapper.NewSnapshotMapper(),
	}
}

func (r *SnapshotRepositoryImpl) Create(ctx context.Context, snapshot *entity.Snapshot) error {
	m := r.mapper.ToModel(snapshot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*snapshot = *r.mapper.ToEntity(m)
	return nil
}

func (r *SnapshotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Snapshot{}, id).Error
}

func (r *SnapshotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Snapshot, error) {
	var m model.Snapshot
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SnapshotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Snapshot, error) {
	var models []*model.Snapshot
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SnapshotRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Snapshot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
