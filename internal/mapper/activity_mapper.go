package mapper

import (
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}
	return &entity.ActivityLog{
		Id:         a.Id,
		EmployeeId: a.EmployeeId,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}
	return &model.ActivityLog{
		Id:         a.Id,
		EmployeeId: a.EmployeeId,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
