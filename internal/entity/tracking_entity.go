package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a pipeline column on the tracking board. There is no forced
// ordering: any stage is reachable from any other via drag.
type Stage string

const (
	StagePending    Stage = "pending"
	StageInProgress Stage = "inProgress"
	StageReview     Stage = "review"
	StageCompleted  Stage = "completed"
)

// Stages lists the columns in board order.
func Stages() []Stage {
	return []Stage{StagePending, StageInProgress, StageReview, StageCompleted}
}

func (s Stage) Valid() bool {
	switch s {
	case StagePending, StageInProgress, StageReview, StageCompleted:
		return true
	}
	return false
}

// TrackingEntry joins a tender to its pipeline stage. One entry per tracked
// tender; duplicates can slip through (no unique constraint in the legacy
// store) and are reconciled by RemoveDuplicateTrackingEntries.
type TrackingEntry struct {
	Id            uuid.UUID
	TenderId      uuid.UUID
	Stage         Stage
	Position      int
	LastMovedNote string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
