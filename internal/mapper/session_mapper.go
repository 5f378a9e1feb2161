package mapper

import (
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.LiveSession) *entity.LiveSession {
	if s == nil {
		return nil
	}
	return &entity.LiveSession{
		Id:               s.Id,
		EmployeeId:       s.EmployeeId,
		EmployeeName:     s.EmployeeName,
		SessionStart:     s.SessionStart,
		TotalSeconds:     s.TotalSeconds,
		DurationSeconds:  s.DurationSeconds,
		Status:           s.Status,
		PermanentSession: s.PermanentSession,
		LastUpdate:       s.LastUpdate,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.LiveSession) []*entity.LiveSession {
	entities := make([]*entity.LiveSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
