package model

import (
	"time"

	"github.com/google/uuid"
)

type Snapshot struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId   uuid.UUID `gorm:"type:uuid;not null;index:idx_snapshots_employee_date,priority:1"`
	EmployeeName string    `gorm:"type:varchar(255)"`
	Date         string    `gorm:"type:varchar(10);not null;index:idx_snapshots_employee_date,priority:2"`
	TotalSeconds int64     `gorm:"default:0"`
	Percentage   float64   `gorm:"type:numeric(5,2);default:0"`
	Duration     string    `gorm:"type:varchar(8);not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	IsAbsent     bool      `gorm:"default:false"`
	SnapshotType string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (Snapshot) TableName() string {
	return "time_tracking_snapshots"
}
