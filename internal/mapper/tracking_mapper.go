package mapper

import (
	"time"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"
)

type TrackingMapper struct{}

func NewTrackingMapper() *TrackingMapper {
	return &TrackingMapper{}
}

func (m *TrackingMapper) ToEntity(t *model.TrackingEntry) *entity.TrackingEntry {
	if t == nil {
		return nil
	}
	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}
	return &entity.TrackingEntry{
		Id:            t.Id,
		TenderId:      t.TenderId,
		Stage:         entity.Stage(t.Stage),
		Position:      t.Position,
		LastMovedNote: t.LastMovedNote,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *TrackingMapper) ToModel(t *entity.TrackingEntry) *model.TrackingEntry {
	if t == nil {
		return nil
	}
	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}
	return &model.TrackingEntry{
		Id:            t.Id,
		TenderId:      t.TenderId,
		Stage:         string(t.Stage),
		Position:      t.Position,
		LastMovedNote: t.LastMovedNote,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *TrackingMapper) ToEntities(entries []*model.TrackingEntry) []*entity.TrackingEntry {
	entities := make([]*entity.TrackingEntry, len(entries))
	for i, t := range entries {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
