package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLogResponse struct {
	Id         uuid.UUID  `json:"id"`
	EmployeeId uuid.UUID  `json:"employee_id"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityId   *uuid.UUID `json:"entity_id"`
	CreatedAt  time.Time  `json:"created_at"`
}
