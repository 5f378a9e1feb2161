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

type CompanyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB) contract.CompanyRepository {
	return &CompanyRepositoryImpl{
		db:     db,
		mapper: mapper.NewCompanyMapper(),
	}
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *entity.Company) error {
	m := r.mapper.ToModel(company)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*company = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *entity.Company) error {
	m := r.mapper.ToModel(company)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*company = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Company{}, id).Error
}

func (r *CompanyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error) {
	var m model.Company
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CompanyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error) {
	var models []*model.Company
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CompanyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Company{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerMapper(),
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, id).Error
}

func (r *CustomerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var m model.Customer
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	var models []*model.Customer
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CustomerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Customer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
