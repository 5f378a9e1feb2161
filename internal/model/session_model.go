package model

import (
	"time"

	"github.com/google/uuid"
)

type LiveSession struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeName     string     `gorm:"type:varchar(255)"`
	SessionStart     *time.Time `gorm:"index"`
	TotalSeconds     int64      `gorm:"default:0"`
	DurationSeconds  *int64
	Status           string     `gorm:"type:varchar(20);index"`
	PermanentSession bool       `gorm:"default:false"`
	LastUpdate       *time.Time
}

func (LiveSession) TableName() string {
	return "live_tracking"
}
