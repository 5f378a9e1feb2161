package dto

import (
	"time"

	"github.com/google/uuid"
)

type SnapshotResponse struct {
	Id           uuid.UUID `json:"id"`
	EmployeeId   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Date         string    `json:"date"`
	TotalSeconds int64     `json:"total_seconds"`
	Duration     string    `json:"duration"`
	Percentage   float64   `json:"percentage"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	IsAbsent     bool      `json:"is_absent"`
	CreatedAt    time.Time `json:"created_at"`
}

// RunSnapshotRequest triggers a manual snapshot pass. Force bypasses the
// one-per-day duplicate guard.
type RunSnapshotRequest struct {
	Force bool `json:"force"`
}

type RunSnapshotResponse struct {
	Date             string `json:"date"`
	SnapshotsCreated int    `json:"snapshots_created"`
	AbsencesRecorded int    `json:"absences_recorded"`
	SkippedExisting  int    `json:"skipped_existing"`
	Failures         int    `json:"failures"`
}

type SchedulerSettingsRequest struct {
	ResetTime       string `json:"reset_time" validate:"required,len=5"`
	SnapshotTime    string `json:"snapshot_time" validate:"required,len=5"`
	EnableAutoReset bool   `json:"enable_auto_reset"`
	EnableSnapshot  bool   `json:"enable_snapshot"`
}

type SchedulerSettingsResponse struct {
	ResetTime       string    `json:"reset_time"`
	SnapshotTime    string    `json:"snapshot_time"`
	EnableAutoReset bool      `json:"enable_auto_reset"`
	EnableSnapshot  bool      `json:"enable_snapshot"`
	UpdatedAt       time.Time `json:"updated_at"`
}
