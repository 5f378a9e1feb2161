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

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmployeeMapper
}

func NewEmployeeRepository(db *gorm.DB) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmployeeMapper(),
	}
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *entity.Employee) error {
	m := r.mapper.ToModel(employee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*employee = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, employee *entity.Employee) error {
	m := r.mapper.ToModel(employee)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*employee = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Employee{}, id).Error
}

func (r *EmployeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	var m model.Employee
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EmployeeRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var m model.Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EmployeeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error) {
	var models []*model.Employee
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EmployeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Employee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
