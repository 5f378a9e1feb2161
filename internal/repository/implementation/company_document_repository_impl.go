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

type CompanyDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewCompanyDocumentRepository(db *gorm.DB) contract.CompanyDocumentRepository {
	return &CompanyDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *CompanyDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.CompanyDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanyDocumentRepositoryImpl) Update(ctx context.Context, doc *entity.CompanyDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanyDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CompanyDocument{}, id).Error
}

func (r *CompanyDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyDocument, error) {
	var m model.CompanyDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CompanyDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanyDocument, error) {
	var models []*model.CompanyDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
