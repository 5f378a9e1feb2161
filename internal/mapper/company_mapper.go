package mapper

import (
	"time"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"

	"gorm.io/gorm"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}
	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		d := c.DeletedAt.Time
		deletedAt = &d
	}
	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		u := c.UpdatedAt
		updatedAt = &u
	}
	return &entity.Company{
		Id:        c.Id,
		Name:      c.Name,
		TaxNumber: c.TaxNumber,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: c.DeletedAt.Valid,
	}
}

func (m *CompanyMapper) ToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}
	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}
	return &model.Company{
		Id:        c.Id,
		Name:      c.Name,
		TaxNumber: c.TaxNumber,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *CompanyMapper) ToEntities(companies []*model.Company) []*entity.Company {
	entities := make([]*entity.Company, len(companies))
	for i, c := range companies {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		d := c.DeletedAt.Time
		deletedAt = &d
	}
	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		u := c.UpdatedAt
		updatedAt = &u
	}
	return &entity.Customer{
		Id:            c.Id,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     c.DeletedAt.Valid,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}
	return &model.Customer{
		Id:            c.Id,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *CustomerMapper) ToEntities(customers []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(customers))
	for i, c := range customers {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
