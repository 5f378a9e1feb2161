package entity

import (
	"time"

	"github.com/google/uuid"
)

// LiveSession is a per-employee work session written by the live-tracking
// writer. This service only ever reads them.
type LiveSession struct {
	Id               uuid.UUID
	EmployeeId       uuid.UUID
	EmployeeName     string
	SessionStart     *time.Time
	TotalSeconds     int64
	DurationSeconds  *int64 // reported duration, used as a fallback
	Status           string
	PermanentSession bool
	LastUpdate       *time.Time
}
