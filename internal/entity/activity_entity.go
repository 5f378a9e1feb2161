package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog records a business action. Absence detection queries it to
// decide whether an employee showed up on a given day.
type ActivityLog struct {
	Id         uuid.UUID
	EmployeeId uuid.UUID
	Action     string
	EntityType string
	EntityId   *uuid.UUID
	CreatedAt  time.Time
}
