package model

import "time"

// SchedulerSettings is a single-row table (id = 1).
type SchedulerSettings struct {
	Id              int       `gorm:"primaryKey"`
	ResetTime       string    `gorm:"type:varchar(5);not null;default:'04:00'"`
	SnapshotTime    string    `gorm:"type:varchar(5);not null;default:'23:55'"`
	EnableAutoReset bool      `gorm:"default:true"`
	EnableSnapshot  bool      `gorm:"default:true"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (SchedulerSettings) TableName() string {
	return "scheduler_settings"
}
