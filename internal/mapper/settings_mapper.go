package mapper

import (
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(s *model.SchedulerSettings) *entity.SchedulerSettings {
	if s == nil {
		return nil
	}
	return &entity.SchedulerSettings{
		Id:              s.Id,
		ResetTime:       s.ResetTime,
		SnapshotTime:    s.SnapshotTime,
		EnableAutoReset: s.EnableAutoReset,
		EnableSnapshot:  s.EnableSnapshot,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *SettingsMapper) ToModel(s *entity.SchedulerSettings) *model.SchedulerSettings {
	if s == nil {
		return nil
	}
	return &model.SchedulerSettings{
		Id:              s.Id,
		ResetTime:       s.ResetTime,
		SnapshotTime:    s.SnapshotTime,
		EnableAutoReset: s.EnableAutoReset,
		EnableSnapshot:  s.EnableSnapshot,
		UpdatedAt:       s.UpdatedAt,
	}
}
