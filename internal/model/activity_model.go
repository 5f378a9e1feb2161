package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId uuid.UUID  `gorm:"type:uuid;not null;index:idx_activity_employee_created,priority:1"`
	Action     string     `gorm:"type:varchar(100);not null"`
	EntityType string     `gorm:"type:varchar(50)"`
	EntityId   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index:idx_activity_employee_created,priority:2"`
}

func (ActivityLog) TableName() string {
	return "activitylogs"
}
