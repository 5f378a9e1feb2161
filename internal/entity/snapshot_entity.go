package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SnapshotTypeScheduled = "scheduled"
	SnapshotTypeManual    = "manual"

	SnapshotStatusCompleted = "completed"
	SnapshotStatusAbsent    = "absent"
)

// Snapshot is the immutable daily record of an employee's elapsed work time.
// Invariant: at most one snapshot per (EmployeeId, Date), enforced by a
// check-then-write guard plus the periodic dedup sweep, not by the database.
type Snapshot struct {
	Id           uuid.UUID
	EmployeeId   uuid.UUID
	EmployeeName string
	Date         string // YYYY-MM-DD
	TotalSeconds int64
	Percentage   float64
	Duration     string // HH:MM:SS
	Status       string
	IsAbsent     bool
	SnapshotType string
	CreatedAt    time.Time
}
