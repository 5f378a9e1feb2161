package mapper

import (
	"time"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"

	"gorm.io/gorm"
)

type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

func (m *EmployeeMapper) ToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		d := e.DeletedAt.Time
		deletedAt = &d
	}
	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		u := e.UpdatedAt
		updatedAt = &u
	}
	return &entity.Employee{
		Id:           e.Id,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		PasswordHash: e.PasswordHash,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    e.DeletedAt.Valid,
	}
}

func (m *EmployeeMapper) ToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}
	return &model.Employee{
		Id:           e.Id,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		PasswordHash: e.PasswordHash,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *EmployeeMapper) ToEntities(employees []*model.Employee) []*entity.Employee {
	entities := make([]*entity.Employee, len(employees))
	for i, e := range employees {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
