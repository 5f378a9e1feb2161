package entity

import "time"

// SchedulerSettings is the single-row configuration the snapshot scheduler
// reads at construction and re-reads when a settings-updated event arrives.
type SchedulerSettings struct {
	Id              int
	ResetTime       string // "HH:MM"
	SnapshotTime    string // "HH:MM"
	EnableAutoReset bool
	EnableSnapshot  bool
	UpdatedAt       time.Time
}
