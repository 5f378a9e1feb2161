package dto

import (
	"time"

	"github.com/google/uuid"
)

type LiveSessionResponse struct {
	Id               uuid.UUID  `json:"id"`
	EmployeeId       uuid.UUID  `json:"employee_id"`
	EmployeeName     string     `json:"employee_name"`
	SessionStart     *time.Time `json:"session_start"`
	TotalSeconds     int64      `json:"total_seconds"`
	Duration         string     `json:"duration"`
	Status           string     `json:"status"`
	PermanentSession bool       `json:"permanent_session"`
	LastUpdate       *time.Time `json:"last_update"`
}
