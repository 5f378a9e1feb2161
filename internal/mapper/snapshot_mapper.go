package mapper

import (
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"
)

type SnapshotMapper struct{}

func NewSnapshotMapper() *SnapshotMapper {
	return &SnapshotMapper{}
}

func (m *SnapshotMapper) ToEntity(s *model.Snapshot) *entity.Snapshot {
	if s == nil {
		return nil
	}
	return &entity.Snapshot{
		Id:           s.Id,
		EmployeeId:   s.EmployeeId,
		EmployeeName: s.EmployeeName,
		Date:         s.Date,
		TotalSeconds: s.TotalSeconds,
		Percentage:   s.Percentage,
		Duration:     s.Duration,
		Status:       s.Status,
		IsAbsent:     s.IsAbsent,
		SnapshotType: s.SnapshotType,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *SnapshotMapper) ToModel(s *entity.Snapshot) *model.Snapshot {
	if s == nil {
		return nil
	}
	return &model.Snapshot{
		Id:           s.Id,
		EmployeeId:   s.EmployeeId,
		EmployeeName: s.EmployeeName,
		Date:         s.Date,
		TotalSeconds: s.TotalSeconds,
		Percentage:   s.Percentage,
		Duration:     s.Duration,
		Status:       s.Status,
		IsAbsent:     s.IsAbsent,
		SnapshotType: s.SnapshotType,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *SnapshotMapper) ToEntities(snapshots []*model.Snapshot) []*entity.Snapshot {
	entities := make([]*entity.Snapshot, len(snapshots))
	for i, s := range snapshots {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
